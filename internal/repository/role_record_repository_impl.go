package repository

import (
	"errors"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRecordRepository struct{}

func NewRoleRecordRepository() domainRepo.RoleRecordRepository {
	return &roleRecordRepository{}
}

// Creation uses ON CONFLICT DO NOTHING on user_id so a role change back to
// a previously held role does not clobber the old profile data.

func (r *roleRecordRepository) CreatePatientIfAbsent(db *gorm.DB, userID uuid.UUID) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&entity.Patient{UserID: userID}).Error
}

func (r *roleRecordRepository) CreateAdminIfAbsent(db *gorm.DB, userID uuid.UUID) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&entity.Admin{UserID: userID}).Error
}

func (r *roleRecordRepository) CreatePharmacyStaffIfAbsent(db *gorm.DB, userID uuid.UUID) error {
	// PharmacyID stays NULL until an explicit assignment.
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&entity.PharmacyStaff{UserID: userID}).Error
}

func (r *roleRecordRepository) DeletePatient(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.Patient{}).Error
}

func (r *roleRecordRepository) DeleteAdmin(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.Admin{}).Error
}

func (r *roleRecordRepository) DeletePharmacyStaff(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.PharmacyStaff{}).Error
}

func (r *roleRecordRepository) FindPatientByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *roleRecordRepository) UpdatePatient(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *roleRecordRepository) FindPharmacyStaffByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PharmacyStaff, error) {
	var staff entity.PharmacyStaff
	err := db.Where("user_id = ?", userID).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *roleRecordRepository) AssignPharmacy(db *gorm.DB, userID, pharmacyID uuid.UUID) error {
	return db.Model(&entity.PharmacyStaff{}).
		Where("user_id = ?", userID).
		Update("pharmacy_id", pharmacyID).Error
}
