package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medico-backend/internal/converter"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/domain/repository"
	"medico-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrDoctorEmailExists     = errors.New("doctor email already registered")
	ErrDoctorLicenseExists   = errors.New("license number already registered")
	ErrDoctorAlreadyAtClinic = errors.New("doctor already has an active association with this clinic")
	ErrAssociationNotFound   = errors.New("clinic association not found")
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Verify(ctx context.Context, id, verifierID uuid.UUID) (*dto.DoctorResponse, error)
	SearchNearby(ctx context.Context, query entity.NearbyQuery) (*dto.NearbyDoctorListResponse, error)
	AssignClinic(ctx context.Context, doctorID uuid.UUID, req *dto.AssignClinicRequest) (*dto.DoctorClinicResponse, error)
	EndClinicAssociation(ctx context.Context, doctorID, associationID uuid.UUID) error
}

type doctorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	doctorClinicRepo repository.DoctorClinicRepository
	clinicRepo       repository.ClinicRepository
	cache            *service.CacheManager
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	doctorClinicRepo repository.DoctorClinicRepository,
	clinicRepo repository.ClinicRepository,
	cache *service.CacheManager,
) DoctorUsecase {
	return &doctorUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		doctorClinicRepo: doctorClinicRepo,
		clinicRepo:       clinicRepo,
		cache:            cache,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Email:                      req.Email,
		FullName:                   req.FullName,
		Phone:                      req.Phone,
		ProfilePictureURL:          req.ProfilePictureURL,
		LicenseNumber:              req.LicenseNumber,
		Specialization:             req.Specialization,
		SubSpecialization:          req.SubSpecialization,
		Qualification:              req.Qualification,
		ExperienceYears:            req.ExperienceYears,
		Bio:                        req.Bio,
		LanguagesSpoken:            req.LanguagesSpoken,
		MedicalCouncilRegistration: req.MedicalCouncilRegistration,
		AvailableDays:              req.AvailableDays,
		AvailableTimeSlots:         req.AvailableTimeSlots,
	}
	if req.ConsultationFee != nil {
		fee := decimal.NewFromFloat(*req.ConsultationFee)
		doctor.ConsultationFee = &fee
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isDuplicateKeyError(err, "license") {
			return nil, ErrDoctorLicenseExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.cache.DeletePattern(ctx, service.DoctorListCachePattern)
	u.log.Infof("Doctor created: id=%s name=%s", doctor.ID, doctor.FullName)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	var cached dto.DoctorResponse
	if u.cache.GetJSON(ctx, service.DoctorCacheKey(id), &cached) {
		return &cached, nil
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	response := converter.DoctorToResponse(doctor)
	u.cache.SetJSON(ctx, service.DoctorCacheKey(id), response, service.UserCacheTTL)

	return response, nil
}

func (u *doctorUsecase) List(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	cacheKey := fmt.Sprintf("doctor:list:%d:%d:%s:%s:%t",
		filter.Page, filter.PageSize, filter.Specialization, filter.Search, filter.VerifiedOnly)

	var cached dto.DoctorListResponse
	if u.cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	doctors, total, err := u.doctorRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	response := &dto.DoctorListResponse{
		Doctors:  converter.DoctorsToResponses(doctors),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	u.cache.SetJSON(ctx, cacheKey, response, service.ListCacheTTL)

	return response, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.FullName != nil {
		doctor.FullName = *req.FullName
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.ProfilePictureURL != nil {
		doctor.ProfilePictureURL = *req.ProfilePictureURL
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.SubSpecialization != nil {
		doctor.SubSpecialization = *req.SubSpecialization
	}
	if req.Qualification != nil {
		doctor.Qualification = *req.Qualification
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = req.ExperienceYears
	}
	if req.ConsultationFee != nil {
		fee := decimal.NewFromFloat(*req.ConsultationFee)
		doctor.ConsultationFee = &fee
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}
	if req.LanguagesSpoken != nil {
		doctor.LanguagesSpoken = req.LanguagesSpoken
	}
	if req.AvailableDays != nil {
		doctor.AvailableDays = req.AvailableDays
	}
	if req.AvailableTimeSlots != nil {
		doctor.AvailableTimeSlots = req.AvailableTimeSlots
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidate(ctx, id)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorRepo.Delete(u.db.WithContext(ctx), id); err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}

	u.invalidate(ctx, id)
	u.log.Infof("Doctor deleted: id=%s", id)
	return nil
}

func (u *doctorUsecase) Verify(ctx context.Context, id, verifierID uuid.UUID) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if !doctor.IsVerified {
		now := time.Now()
		doctor.IsVerified = true
		doctor.VerifiedAt = &now
		doctor.VerifiedBy = &verifierID
		if err := u.doctorRepo.Update(tx, doctor); err != nil {
			u.log.Warnf("Failed to verify doctor %s: %+v", id, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidate(ctx, id)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) SearchNearby(ctx context.Context, query entity.NearbyQuery) (*dto.NearbyDoctorListResponse, error) {
	rows, err := u.doctorRepo.SearchNearby(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Nearby doctor search failed: %+v", err)
		return nil, err
	}

	return &dto.NearbyDoctorListResponse{
		Doctors: converter.NearbyDoctorsToResponses(rows),
		Total:   len(rows),
	}, nil
}

// AssignClinic creates the active association; the partial unique index
// rejects a second live association for the same pair.
func (u *doctorUsecase) AssignClinic(ctx context.Context, doctorID uuid.UUID, req *dto.AssignClinicRequest) (*dto.DoctorClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	clinic, err := u.clinicRepo.FindByID(tx, req.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	assoc := &entity.DoctorClinic{
		DoctorID:        doctorID,
		ClinicID:        req.ClinicID,
		IsPrimary:       req.IsPrimary,
		StartDate:       time.Now(),
		ConsultationFee: converterFee(req.ConsultationFee),
		Department:      req.Department,
		Designation:     req.Designation,
		Status:          "active",
	}

	if err := u.doctorClinicRepo.Create(tx, assoc); err != nil {
		if isDuplicateKeyError(err, "unique_active_doctor_clinic") {
			return nil, ErrDoctorAlreadyAtClinic
		}
		u.log.Warnf("Failed to create doctor-clinic association: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidate(ctx, doctorID)
	u.cache.Delete(ctx, service.ClinicCacheKey(req.ClinicID))

	assoc.Clinic = *clinic
	return converter.DoctorClinicToResponse(assoc), nil
}

func (u *doctorUsecase) EndClinicAssociation(ctx context.Context, doctorID, associationID uuid.UUID) error {
	assoc, err := u.doctorClinicRepo.FindByID(u.db.WithContext(ctx), associationID)
	if err != nil {
		return err
	}
	if assoc == nil || assoc.DoctorID != doctorID {
		return ErrAssociationNotFound
	}

	affected, err := u.doctorClinicRepo.End(u.db.WithContext(ctx), associationID)
	if err != nil {
		u.log.Warnf("Failed to end association %s: %+v", associationID, err)
		return err
	}
	if affected == 0 {
		return ErrAssociationNotFound
	}

	u.invalidate(ctx, doctorID)
	u.cache.Delete(ctx, service.ClinicCacheKey(assoc.ClinicID))
	return nil
}

func (u *doctorUsecase) invalidate(ctx context.Context, id uuid.UUID) {
	u.cache.Delete(ctx, service.DoctorCacheKey(id))
	u.cache.DeletePattern(ctx, service.DoctorListCachePattern)
}

func converterFee(fee *float64) *decimal.Decimal {
	if fee == nil {
		return nil
	}
	d := decimal.NewFromFloat(*fee)
	return &d
}
