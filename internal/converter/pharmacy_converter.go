package converter

import (
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
)

// PharmacyToResponse converts a Pharmacy entity to PharmacyResponse DTO
func PharmacyToResponse(pharmacy *entity.Pharmacy) *dto.PharmacyResponse {
	if pharmacy == nil {
		return nil
	}

	response := &dto.PharmacyResponse{
		ID:               pharmacy.ID,
		Name:             pharmacy.Name,
		Description:      pharmacy.Description,
		Phone:            pharmacy.Phone,
		Email:            pharmacy.Email,
		SupportsDelivery: pharmacy.SupportsDelivery,
		SupportsPickup:   pharmacy.SupportsPickup,
		IsVerified:       pharmacy.IsVerified,
		VerifiedAt:       pharmacy.VerifiedAt,
		IsActive:         pharmacy.IsActive,
		CreatedAt:        pharmacy.CreatedAt,
		UpdatedAt:        pharmacy.UpdatedAt,
	}

	if pharmacy.Location != nil {
		lat, _ := pharmacy.Location.Latitude.Float64()
		lng, _ := pharmacy.Location.Longitude.Float64()
		response.Location = &dto.PharmacyLocationResponse{
			AddressLine: pharmacy.Location.AddressLine,
			City:        pharmacy.Location.City,
			State:       pharmacy.Location.State,
			Country:     pharmacy.Location.Country,
			Pincode:     pharmacy.Location.Pincode,
			Latitude:    lat,
			Longitude:   lng,
		}
	}

	for _, h := range pharmacy.Hours {
		response.Hours = append(response.Hours, dto.PharmacyHoursResponse{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		})
	}

	return response
}

func PharmaciesToResponses(pharmacies []entity.Pharmacy) []dto.PharmacyResponse {
	responses := make([]dto.PharmacyResponse, len(pharmacies))
	for i, pharmacy := range pharmacies {
		responses[i] = *PharmacyToResponse(&pharmacy)
	}
	return responses
}

func NearbyPharmaciesToResponses(rows []entity.NearbyPharmacy) []dto.NearbyPharmacyResponse {
	responses := make([]dto.NearbyPharmacyResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.NearbyPharmacyResponse{
			PharmacyResponse: *PharmacyToResponse(&row.Pharmacy),
			DistanceKM:       row.DistanceKM,
		}
	}
	return responses
}
