package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uuid.UUID) error
	List(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, int64, error)
	SearchNearby(db *gorm.DB, query entity.NearbyQuery) ([]entity.NearbyDoctor, error)
	Count(db *gorm.DB) (int64, error)
}

type DoctorClinicRepository interface {
	Create(db *gorm.DB, assoc *entity.DoctorClinic) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorClinic, error)
	FindActivePair(db *gorm.DB, doctorID, clinicID uuid.UUID) (*entity.DoctorClinic, error)
	ListByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorClinic, error)
	ListByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.DoctorClinic, error)
	Update(db *gorm.DB, assoc *entity.DoctorClinic) error
	End(db *gorm.DB, id uuid.UUID) (int64, error)
}
