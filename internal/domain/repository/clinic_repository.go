package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
	FindBySlug(db *gorm.DB, slug string) (*entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	List(db *gorm.DB, filter entity.ClinicFilter) ([]entity.Clinic, int64, error)
	SearchNearby(db *gorm.DB, query entity.NearbyQuery) ([]entity.NearbyClinic, error)
	Count(db *gorm.DB) (int64, error)
}
