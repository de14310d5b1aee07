package repository

import (
	"errors"
	"time"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorClinicRepository struct{}

func NewDoctorClinicRepository() domainRepo.DoctorClinicRepository {
	return &doctorClinicRepository{}
}

func (r *doctorClinicRepository) Create(db *gorm.DB, assoc *entity.DoctorClinic) error {
	return db.Create(assoc).Error
}

func (r *doctorClinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorClinic, error) {
	var assoc entity.DoctorClinic
	err := db.Preload("Doctor").Preload("Clinic").
		Where("id = ?", id).First(&assoc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assoc, nil
}

func (r *doctorClinicRepository) FindActivePair(db *gorm.DB, doctorID, clinicID uuid.UUID) (*entity.DoctorClinic, error) {
	var assoc entity.DoctorClinic
	err := db.Where("doctor_id = ? AND clinic_id = ? AND end_date IS NULL AND status = ?",
		doctorID, clinicID, "active").First(&assoc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assoc, nil
}

func (r *doctorClinicRepository) ListByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorClinic, error) {
	var assocs []entity.DoctorClinic
	err := db.Preload("Clinic").
		Where("doctor_id = ?", doctorID).
		Order("start_date DESC").
		Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *doctorClinicRepository) ListByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.DoctorClinic, error) {
	var assocs []entity.DoctorClinic
	err := db.Preload("Doctor").
		Where("clinic_id = ? AND end_date IS NULL AND status = ?", clinicID, "active").
		Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *doctorClinicRepository) Update(db *gorm.DB, assoc *entity.DoctorClinic) error {
	return db.Save(assoc).Error
}

// End closes an association by stamping end_date; only a live association
// can be ended, so a second call is a no-op with 0 rows.
func (r *doctorClinicRepository) End(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.DoctorClinic{}).
		Where("id = ? AND end_date IS NULL", id).
		Updates(map[string]interface{}{
			"end_date": time.Now(),
			"status":   "inactive",
		})
	return result.RowsAffected, result.Error
}
