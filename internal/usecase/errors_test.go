package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_doctors_email"}

	assert.True(t, isDuplicateKeyError(dup, "idx_doctors_email"))
	assert.True(t, isDuplicateKeyError(dup, "IDX_DOCTORS_EMAIL"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create doctor: %w", dup), "doctors_email"))

	assert.False(t, isDuplicateKeyError(dup, "idx_doctors_license"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_doctors_email"}, "idx_doctors_email"))
	assert.False(t, isDuplicateKeyError(errors.New("plain error"), "idx_doctors_email"))
	assert.False(t, isDuplicateKeyError(nil, "idx_doctors_email"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_doctor"}

	assert.True(t, isForeignKeyError(fk, "fk_appointments_doctor"))
	assert.True(t, isForeignKeyError(fmt.Errorf("insert: %w", fk), "appointments_doctor"))

	assert.False(t, isForeignKeyError(fk, "fk_appointments_clinic"))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "fk_appointments_doctor"}, "fk_appointments_doctor"))
	assert.False(t, isForeignKeyError(errors.New("plain error"), "fk_appointments_doctor"))
}
