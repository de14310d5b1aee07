package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/usecase"
	"medico-backend/pkg/response"
	"medico-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUsecase
	validator       *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase: pharmacyUsecase,
		validator:       validator,
	}
}

func (h *PharmacyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacy, err := h.pharmacyUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create pharmacy")
		return
	}

	response.Success(w, http.StatusCreated, "Pharmacy created successfully", pharmacy)
}

func (h *PharmacyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	pharmacy, err := h.pharmacyUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPharmacyNotFound:
			response.NotFound(w, "Pharmacy not found")
		default:
			response.InternalServerError(w, "Failed to get pharmacy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy retrieved successfully", pharmacy)
}

func (h *PharmacyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	filter := entity.PharmacyFilter{
		City:     q.Get("city"),
		Search:   q.Get("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := q.Get("supports_delivery"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid supports_delivery value", nil)
			return
		}
		filter.SupportsDelivery = &v
	}

	pharmacies, err := h.pharmacyUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list pharmacies")
		return
	}

	response.Success(w, http.StatusOK, "Pharmacies retrieved successfully", pharmacies)
}

func (h *PharmacyHandler) SearchNearby(w http.ResponseWriter, r *http.Request) {
	query, ok := parseNearbyQuery(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid lat/lng/radius_km parameters", nil)
		return
	}

	pharmacies, err := h.pharmacyUsecase.SearchNearby(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to search nearby pharmacies")
		return
	}

	response.Success(w, http.StatusOK, "Nearby pharmacies retrieved successfully", pharmacies)
}

func (h *PharmacyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	var req dto.UpdatePharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pharmacy, err := h.pharmacyUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPharmacyNotFound:
			response.NotFound(w, "Pharmacy not found")
		default:
			response.InternalServerError(w, "Failed to update pharmacy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy updated successfully", pharmacy)
}

func (h *PharmacyHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	if err := h.pharmacyUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPharmacyNotFound:
			response.NotFound(w, "Pharmacy not found")
		default:
			response.InternalServerError(w, "Failed to deactivate pharmacy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy deactivated successfully", nil)
}

func (h *PharmacyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pharmacy ID", nil)
		return
	}

	pharmacy, err := h.pharmacyUsecase.Verify(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPharmacyNotFound:
			response.NotFound(w, "Pharmacy not found")
		case usecase.ErrPharmacyAlreadyVerified:
			response.Conflict(w, "Pharmacy is already verified")
		default:
			response.InternalServerError(w, "Failed to verify pharmacy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy verified successfully", pharmacy)
}
