package repository

import (
	"errors"
	"time"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Create(clinic).Error
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Preload("Doctors", "end_date IS NULL AND status = ?", "active").
		Preload("Doctors.Doctor").
		Where("id = ? AND deleted_at IS NULL", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindBySlug(db *gorm.DB, slug string) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("slug = ? AND deleted_at IS NULL", slug).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Save(clinic).Error
}

func (r *clinicRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Clinic{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"is_active":  false,
		})
	return result.RowsAffected, result.Error
}

func (r *clinicRepository) List(db *gorm.DB, filter entity.ClinicFilter) ([]entity.Clinic, int64, error) {
	query := db.Model(&entity.Clinic{}).Where("deleted_at IS NULL")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.City != "" {
		query = query.Where("address ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clinics []entity.Clinic
	err := query.Order("name ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&clinics).Error
	if err != nil {
		return nil, 0, err
	}
	return clinics, total, nil
}

// SearchNearby computes distance with the same expression the functional
// GiST index on clinics is defined with, so the planner can use it.
func (r *clinicRepository) SearchNearby(db *gorm.DB, query entity.NearbyQuery) ([]entity.NearbyClinic, error) {
	var results []entity.NearbyClinic
	err := db.Raw(`
		SELECT c.*,
		       ST_Distance(
		           ST_SetSRID(ST_MakePoint(c.longitude::float8, c.latitude::float8), 4326)::geography,
		           ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		       ) / 1000 AS distance_km
		FROM clinics c
		WHERE c.deleted_at IS NULL
		  AND c.is_active = true
		  AND c.status = 'active'
		  AND c.latitude IS NOT NULL
		  AND c.longitude IS NOT NULL
		  AND ST_DWithin(
		      ST_SetSRID(ST_MakePoint(c.longitude::float8, c.latitude::float8), 4326)::geography,
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

func (r *clinicRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Clinic{}).Where("deleted_at IS NULL").Count(&count).Error
	return count, err
}
