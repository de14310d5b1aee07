package repository

import (
	"errors"
	"time"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pharmacyRepository struct{}

func NewPharmacyRepository() domainRepo.PharmacyRepository {
	return &pharmacyRepository{}
}

func (r *pharmacyRepository) Create(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Create(pharmacy).Error
}

func (r *pharmacyRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacy entity.Pharmacy
	err := db.Preload("Location").
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		Where("id = ?", id).First(&pharmacy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pharmacy, nil
}

func (r *pharmacyRepository) Update(db *gorm.DB, pharmacy *entity.Pharmacy) error {
	return db.Omit("Location", "Hours").Save(pharmacy).Error
}

func (r *pharmacyRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Pharmacy{}).
		Where("id = ? AND is_active = true", id).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *pharmacyRepository) Verify(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Pharmacy{}).
		Where("id = ? AND is_verified = false", id).
		Updates(map[string]interface{}{
			"is_verified": true,
			"verified_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *pharmacyRepository) List(db *gorm.DB, filter entity.PharmacyFilter) ([]entity.Pharmacy, int64, error) {
	query := db.Model(&entity.Pharmacy{}).Where("is_active = true")

	if filter.City != "" {
		query = query.Joins("JOIN pharmacy_locations pl ON pl.pharmacy_id = pharmacies.id").
			Where("pl.city ILIKE ?", filter.City)
	}
	if filter.Search != "" {
		query = query.Where("pharmacies.name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.SupportsDelivery != nil {
		query = query.Where("pharmacies.supports_delivery = ?", *filter.SupportsDelivery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pharmacies []entity.Pharmacy
	err := query.Preload("Location").
		Order("pharmacies.name ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&pharmacies).Error
	if err != nil {
		return nil, 0, err
	}
	return pharmacies, total, nil
}

// SearchNearby runs against the stored geography column, which SyncGeography
// keeps aligned with the numeric latitude/longitude pair.
func (r *pharmacyRepository) SearchNearby(db *gorm.DB, query entity.NearbyQuery) ([]entity.NearbyPharmacy, error) {
	var results []entity.NearbyPharmacy
	err := db.Raw(`
		SELECT p.*,
		       ST_Distance(
		           pl.geo,
		           ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		       ) / 1000 AS distance_km
		FROM pharmacies p
		JOIN pharmacy_locations pl ON pl.pharmacy_id = p.id
		WHERE p.is_active = true
		  AND pl.geo IS NOT NULL
		  AND ST_DWithin(
		      pl.geo,
		      ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		      ?
		  )
		ORDER BY distance_km ASC
		LIMIT ? OFFSET ?`,
		query.Longitude, query.Latitude,
		query.Longitude, query.Latitude,
		query.RadiusKM*1000,
		query.PageSize, query.Offset(),
	).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *pharmacyRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Pharmacy{}).Where("is_active = true").Count(&count).Error
	return count, err
}

func (r *pharmacyRepository) UpsertLocation(db *gorm.DB, location *entity.PharmacyLocation) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "pharmacy_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"address_line", "city", "state", "country", "pincode",
			"latitude", "longitude", "updated_at",
		}),
	}).Create(location).Error
}

func (r *pharmacyRepository) SyncGeography(db *gorm.DB, pharmacyID uuid.UUID) error {
	return db.Exec(`
		UPDATE pharmacy_locations
		SET geo = ST_SetSRID(ST_MakePoint(longitude::float8, latitude::float8), 4326)::geography
		WHERE pharmacy_id = ?`, pharmacyID).Error
}

func (r *pharmacyRepository) ReplaceHours(db *gorm.DB, pharmacyID uuid.UUID, hours []entity.PharmacyHours) error {
	if err := db.Where("pharmacy_id = ?", pharmacyID).Delete(&entity.PharmacyHours{}).Error; err != nil {
		return err
	}
	if len(hours) == 0 {
		return nil
	}
	for i := range hours {
		hours[i].PharmacyID = pharmacyID
	}
	return db.Create(&hours).Error
}
