package converter

import (
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	response := &dto.ClinicResponse{
		ID:           clinic.ID,
		Name:         clinic.Name,
		Slug:         clinic.Slug,
		Description:  clinic.Description,
		LogoURL:      clinic.LogoURL,
		Contacts:     clinic.Contacts,
		Address:      clinic.Address,
		Latitude:     decimalToFloat(clinic.Latitude),
		Longitude:    decimalToFloat(clinic.Longitude),
		OpeningHours: clinic.OpeningHours,
		Rating:       decimalToFloat(clinic.Rating),
		RatingCount:  clinic.RatingCount,
		Status:       string(clinic.Status),
		IsActive:     clinic.IsActive,
		CreatedAt:    clinic.CreatedAt,
		UpdatedAt:    clinic.UpdatedAt,
	}

	for _, assoc := range clinic.Doctors {
		response.Doctors = append(response.Doctors, *DoctorClinicToResponse(&assoc))
	}

	return response
}

func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i, clinic := range clinics {
		responses[i] = *ClinicToResponse(&clinic)
	}
	return responses
}

func NearbyClinicsToResponses(rows []entity.NearbyClinic) []dto.NearbyClinicResponse {
	responses := make([]dto.NearbyClinicResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.NearbyClinicResponse{
			ClinicResponse: *ClinicToResponse(&row.Clinic),
			DistanceKM:     row.DistanceKM,
		}
	}
	return responses
}
