package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/delivery/http/middleware"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/usecase"
	"medico-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	createFn func(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	getFn    func(ctx context.Context, patientID, id uuid.UUID) (*dto.AppointmentResponse, error)
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createFn(ctx, patientID, req)
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, patientID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.getFn(ctx, patientID, id)
}

func (s *stubAppointmentUsecase) ListMine(ctx context.Context, patientID uuid.UUID, status string, page, pageSize int) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Page: page, PageSize: pageSize}, nil
}

func (s *stubAppointmentUsecase) Update(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) UpdateStatus(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	return nil, usecase.ErrAppointmentNotFound
}

func (s *stubAppointmentUsecase) SoftDelete(ctx context.Context, patientID, id uuid.UUID) error {
	return nil
}

func (s *stubAppointmentUsecase) HardDelete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubAppointmentUsecase) ListAll(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}

func TestCreateAppointment(t *testing.T) {
	patientID := uuid.New()
	created := uuid.New()

	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, gotPatient uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Equal(t, patientID, gotPatient)
			assert.Equal(t, "Dr. Rania", req.DoctorName)
			return &dto.AppointmentResponse{ID: created, PatientID: gotPatient, Status: "scheduled"}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	body, err := json.Marshal(dto.CreateAppointmentRequest{
		DoctorName:    "Dr. Rania",
		AppointmentAt: time.Now().Add(48 * time.Hour),
		Reason:        "Annual checkup",
		ContactPhone:  "+628123456789",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Create(w, authedRequest("POST", "/api/v1/appointments", body, patientID))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data dto.AppointmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created, resp.Data.ID)
	assert.Equal(t, "scheduled", resp.Data.Status)
}

func TestCreateAppointmentValidationFailure(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	// Missing doctor_name, reason and contact_phone.
	body, err := json.Marshal(map[string]interface{}{
		"appointment_at": time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Create(w, authedRequest("POST", "/api/v1/appointments", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentRejectsPast(t *testing.T) {
	stub := &stubAppointmentUsecase{
		createFn: func(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentInPast
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	body, err := json.Marshal(dto.CreateAppointmentRequest{
		DoctorName:    "Dr. Rania",
		AppointmentAt: time.Now().Add(-time.Hour),
		Reason:        "Checkup",
		ContactPhone:  "+628123456789",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Create(w, authedRequest("POST", "/api/v1/appointments", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentUnauthenticated(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	r := httptest.NewRequest("POST", "/api/v1/appointments", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()
	h.Create(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAppointmentNotOwned(t *testing.T) {
	stub := &stubAppointmentUsecase{
		getFn: func(ctx context.Context, patientID, id uuid.UUID) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentNotOwned
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	r := authedRequest("GET", "/api/v1/appointments/"+uuid.NewString(), nil, uuid.New())
	r = mux.SetURLVars(r, map[string]string{"id": uuid.NewString()})
	w := httptest.NewRecorder()
	h.GetByID(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
