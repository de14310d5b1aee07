package usecase

import (
	"context"
	"errors"
	"time"

	"medico-backend/internal/converter"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/domain/repository"
	"medico-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPatientRecordGone = errors.New("patient record not found")
	ErrPharmacyStaffGone = errors.New("pharmacy staff record not found")
)

type UserUsecase interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdatePatientProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

type userUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	roleRecordRepo repository.RoleRecordRepository
	cache          *service.CacheManager
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRecordRepo repository.RoleRecordRepository,
	cache *service.CacheManager,
) UserUsecase {
	return &userUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		roleRecordRepo: roleRecordRepo,
		cache:          cache,
	}
}

func (u *userUsecase) GetByID(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	var cached dto.UserResponse
	if u.cache.GetJSON(ctx, service.UserCacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := converter.UserToResponse(user)
	u.cache.SetJSON(ctx, service.UserCacheKey(userID), response, service.UserCacheTTL)

	return response, nil
}

// UpdateProfile applies partial identity updates and marks the account
// onboarded once a display name is present.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.GivenName != nil {
		user.GivenName = *req.GivenName
	}
	if req.FamilyName != nil {
		user.FamilyName = *req.FamilyName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	if user.FullName != "" {
		user.IsOnboarded = true
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Delete(ctx, service.UserCacheKey(userID))

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdatePatientProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	patient, err := u.roleRecordRepo.FindPatientByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient record for %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientRecordGone
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = &dob
	}
	applyPatientFields(patient, req)

	if err := u.roleRecordRepo.UpdatePatient(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient record for %s: %+v", userID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Delete(ctx, service.UserCacheKey(userID))

	user.Patient = patient
	return converter.UserToResponse(user), nil
}

// UpdateRole changes the role field and reconciles the satellite profile
// tables in the same transaction: the old role's record is removed and the
// new role's record created. For the pharmacy role an optional pharmacy_id
// points the staff record at its pharmacy, also when the role itself is
// unchanged.
func (u *userUsecase) UpdateRole(ctx context.Context, userID uuid.UUID, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	newRole := entity.UserRole(req.Role)
	if !newRole.Valid() {
		return nil, ErrInvalidRole
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldRole := user.Role
	assigningPharmacy := newRole == entity.RolePharmacy && req.PharmacyID != nil
	if oldRole == newRole && !assigningPharmacy {
		return converter.UserToResponse(user), nil
	}

	if oldRole != newRole {
		user.Role = newRole
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update role for %s: %+v", userID, err)
			return nil, err
		}

		if err := u.applyRoleRecords(tx, userID, oldRole, newRole); err != nil {
			u.log.Warnf("Failed to reconcile role records for %s: %+v", userID, err)
			return nil, err
		}
	}

	if assigningPharmacy {
		if err := u.assignPharmacy(tx, userID, *req.PharmacyID); err != nil {
			u.log.Warnf("Failed to assign pharmacy for %s: %+v", userID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Delete(ctx, service.UserCacheKey(userID))
	u.log.Infof("Role changed for user %s: %s -> %s", userID, oldRole, newRole)

	// Reload so the response carries the fresh satellite record.
	fresh, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil || fresh == nil {
		return converter.UserToResponse(user), nil
	}
	return converter.UserToResponse(fresh), nil
}

// applyRoleRecords keeps the profile tables consistent with the role
// column. Doctors carry independent identities in the doctors table and get
// no per-user record.
func (u *userUsecase) applyRoleRecords(tx *gorm.DB, userID uuid.UUID, oldRole, newRole entity.UserRole) error {
	switch oldRole {
	case entity.RolePatient:
		if err := u.roleRecordRepo.DeletePatient(tx, userID); err != nil {
			return err
		}
	case entity.RoleAdmin:
		if err := u.roleRecordRepo.DeleteAdmin(tx, userID); err != nil {
			return err
		}
	case entity.RolePharmacy:
		if err := u.roleRecordRepo.DeletePharmacyStaff(tx, userID); err != nil {
			return err
		}
	case entity.RoleDoctor:
		// no satellite record
	}

	switch newRole {
	case entity.RolePatient:
		return u.roleRecordRepo.CreatePatientIfAbsent(tx, userID)
	case entity.RoleAdmin:
		return u.roleRecordRepo.CreateAdminIfAbsent(tx, userID)
	case entity.RolePharmacy:
		// Created without a pharmacy; assignment happens separately.
		return u.roleRecordRepo.CreatePharmacyStaffIfAbsent(tx, userID)
	case entity.RoleDoctor:
		u.log.Infof("User %s switched to doctor role; no profile record created", userID)
	}
	return nil
}

// assignPharmacy points the user's pharmacy_staff row at a pharmacy. The
// row exists for any pharmacy-role user: either it predates this call or
// the reconciliation that just ran in the same transaction created it.
func (u *userUsecase) assignPharmacy(tx *gorm.DB, userID, pharmacyID uuid.UUID) error {
	staff, err := u.roleRecordRepo.FindPharmacyStaffByUserID(tx, userID)
	if err != nil {
		return err
	}
	if staff == nil {
		return ErrPharmacyStaffGone
	}

	if err := u.roleRecordRepo.AssignPharmacy(tx, userID, pharmacyID); err != nil {
		if isForeignKeyError(err, "pharmacy") {
			return ErrPharmacyNotFound
		}
		return err
	}
	return nil
}

func (u *userUsecase) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.IsActive = active
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.cache.Delete(ctx, service.UserCacheKey(userID))
	return nil
}

func applyPatientFields(patient *entity.Patient, req *dto.UpdatePatientProfileRequest) {
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.AddressLine1 != nil {
		patient.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		patient.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		patient.City = *req.City
	}
	if req.State != nil {
		patient.State = *req.State
	}
	if req.Country != nil {
		patient.Country = *req.Country
	}
	if req.Pincode != nil {
		patient.Pincode = *req.Pincode
	}
	if req.EmergencyContactName != nil {
		patient.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		patient.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.CurrentMedications != nil {
		patient.CurrentMedications = req.CurrentMedications
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if req.ChronicConditions != nil {
		patient.ChronicConditions = req.ChronicConditions
	}
	if req.InsuranceProvider != nil {
		patient.InsuranceProvider = *req.InsuranceProvider
	}
	if req.InsurancePolicyNumber != nil {
		patient.InsurancePolicyNumber = *req.InsurancePolicyNumber
	}
}
