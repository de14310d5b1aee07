package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRecordRepository manages the satellite profile rows that shadow a
// user's role. Creation is idempotent: an existing row for the user is
// left untouched.
type RoleRecordRepository interface {
	CreatePatientIfAbsent(db *gorm.DB, userID uuid.UUID) error
	CreateAdminIfAbsent(db *gorm.DB, userID uuid.UUID) error
	CreatePharmacyStaffIfAbsent(db *gorm.DB, userID uuid.UUID) error

	DeletePatient(db *gorm.DB, userID uuid.UUID) error
	DeleteAdmin(db *gorm.DB, userID uuid.UUID) error
	DeletePharmacyStaff(db *gorm.DB, userID uuid.UUID) error

	FindPatientByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	UpdatePatient(db *gorm.DB, patient *entity.Patient) error
	FindPharmacyStaffByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PharmacyStaff, error)
	AssignPharmacy(db *gorm.DB, userID, pharmacyID uuid.UUID) error
}
