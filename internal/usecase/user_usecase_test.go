package usecase

import (
	"testing"

	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRoleRecordRepo struct {
	staff *entity.PharmacyStaff

	assignErr        error
	assignedUser     uuid.UUID
	assignedPharmacy uuid.UUID
	assignCalls      int
}

func (s *stubRoleRecordRepo) CreatePatientIfAbsent(db *gorm.DB, userID uuid.UUID) error { return nil }
func (s *stubRoleRecordRepo) CreateAdminIfAbsent(db *gorm.DB, userID uuid.UUID) error   { return nil }
func (s *stubRoleRecordRepo) CreatePharmacyStaffIfAbsent(db *gorm.DB, userID uuid.UUID) error {
	return nil
}
func (s *stubRoleRecordRepo) DeletePatient(db *gorm.DB, userID uuid.UUID) error       { return nil }
func (s *stubRoleRecordRepo) DeleteAdmin(db *gorm.DB, userID uuid.UUID) error         { return nil }
func (s *stubRoleRecordRepo) DeletePharmacyStaff(db *gorm.DB, userID uuid.UUID) error { return nil }

func (s *stubRoleRecordRepo) FindPatientByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	return nil, nil
}

func (s *stubRoleRecordRepo) UpdatePatient(db *gorm.DB, patient *entity.Patient) error { return nil }

func (s *stubRoleRecordRepo) FindPharmacyStaffByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PharmacyStaff, error) {
	return s.staff, nil
}

func (s *stubRoleRecordRepo) AssignPharmacy(db *gorm.DB, userID, pharmacyID uuid.UUID) error {
	s.assignCalls++
	s.assignedUser = userID
	s.assignedPharmacy = pharmacyID
	return s.assignErr
}

func newPharmacyAssignUsecase(repo *stubRoleRecordRepo) *userUsecase {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &userUsecase{log: log, roleRecordRepo: repo}
}

func TestAssignPharmacyUpdatesStaffRecord(t *testing.T) {
	userID := uuid.New()
	pharmacyID := uuid.New()
	repo := &stubRoleRecordRepo{staff: &entity.PharmacyStaff{UserID: userID}}
	u := newPharmacyAssignUsecase(repo)

	err := u.assignPharmacy(nil, userID, pharmacyID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.assignCalls)
	assert.Equal(t, userID, repo.assignedUser)
	assert.Equal(t, pharmacyID, repo.assignedPharmacy)
}

func TestAssignPharmacyWithoutStaffRecord(t *testing.T) {
	repo := &stubRoleRecordRepo{staff: nil}
	u := newPharmacyAssignUsecase(repo)

	err := u.assignPharmacy(nil, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPharmacyStaffGone)
	assert.Zero(t, repo.assignCalls)
}

func TestAssignPharmacyUnknownPharmacy(t *testing.T) {
	userID := uuid.New()
	repo := &stubRoleRecordRepo{
		staff: &entity.PharmacyStaff{UserID: userID},
		assignErr: &pgconn.PgError{
			Code:           "23503",
			ConstraintName: "pharmacy_staff_pharmacy_id_fkey",
		},
	}
	u := newPharmacyAssignUsecase(repo)

	err := u.assignPharmacy(nil, userID, uuid.New())
	assert.ErrorIs(t, err, ErrPharmacyNotFound)
}
