package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PharmacyRepository interface {
	Create(db *gorm.DB, pharmacy *entity.Pharmacy) error
	// FindByID preloads Location and Hours.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pharmacy, error)
	Update(db *gorm.DB, pharmacy *entity.Pharmacy) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
	Verify(db *gorm.DB, id uuid.UUID) (int64, error)
	List(db *gorm.DB, filter entity.PharmacyFilter) ([]entity.Pharmacy, int64, error)
	SearchNearby(db *gorm.DB, query entity.NearbyQuery) ([]entity.NearbyPharmacy, error)
	Count(db *gorm.DB) (int64, error)

	UpsertLocation(db *gorm.DB, location *entity.PharmacyLocation) error
	// SyncGeography recomputes the PostGIS point from the stored
	// latitude/longitude of the pharmacy's location row.
	SyncGeography(db *gorm.DB, pharmacyID uuid.UUID) error
	ReplaceHours(db *gorm.DB, pharmacyID uuid.UUID, hours []entity.PharmacyHours) error
}
