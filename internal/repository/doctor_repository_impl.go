package repository

import (
	"errors"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Clinics", "end_date IS NULL AND status = ?", "active").
		Preload("Clinics.Clinic").
		Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Doctor{}).Error
}

func (r *doctorRepository) List(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	query := db.Model(&entity.Doctor{})

	if filter.Specialization != "" {
		query = query.Where("specialization ILIKE ?", "%"+filter.Specialization+"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("full_name ILIKE ? OR specialization ILIKE ?", like, like)
	}
	if filter.VerifiedOnly {
		query = query.Where("is_verified = true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []entity.Doctor
	err := query.Order("full_name ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

// SearchNearby locates doctors through their active clinic associations.
// Distance is computed from the clinic's coordinates using the same
// geography expression the clinic index is built on.
func (r *doctorRepository) SearchNearby(db *gorm.DB, query entity.NearbyQuery) ([]entity.NearbyDoctor, error) {
	var results []entity.NearbyDoctor
	err := db.Raw(`
		SELECT d.*,
		       dc.clinic_id AS clinic_id,
		       c.name AS clinic_name,
		       ST_Distance(
		           ST_SetSRID(ST_MakePoint(c.longitude::float8, c.latitude::float8), 4326)::geography,
		           ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		       ) / 1000 AS distance_km
		FROM doctors d
		JOIN doctor_clinics dc
		  ON dc.doctor_id = d.id AND dc.end_date IS NULL AND dc.status = 'active'
		JOIN clinics c
		  ON c.id = dc.clinic_id
		 AND c.deleted_at IS NULL
		 AND c.is_active = true
		 AND c.latitude IS NOT NULL
		 AND c.longitude IS NOT NULL
		WHERE ST_DWithin(
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

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}
