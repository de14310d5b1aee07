package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	// FindByID excludes soft-deleted rows.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	HardDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	List(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	CountByStatus(db *gorm.DB) (map[string]int64, error)
}
