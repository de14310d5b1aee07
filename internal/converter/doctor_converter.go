package converter

import (
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:                          doctor.ID,
		Email:                       doctor.Email,
		FullName:                    doctor.FullName,
		Phone:                       doctor.Phone,
		ProfilePictureURL:           doctor.ProfilePictureURL,
		LicenseNumber:               doctor.LicenseNumber,
		Specialization:              doctor.Specialization,
		SubSpecialization:           doctor.SubSpecialization,
		Qualification:               doctor.Qualification,
		ExperienceYears:             doctor.ExperienceYears,
		ConsultationFee:             decimalToFloat(doctor.ConsultationFee),
		Bio:                         doctor.Bio,
		LanguagesSpoken:             doctor.LanguagesSpoken,
		IsVerified:                  doctor.IsVerified,
		Rating:                      decimalToFloat(doctor.Rating),
		RatingCount:                 doctor.RatingCount,
		TotalConsultations:          doctor.TotalConsultations,
		AvailableDays:               doctor.AvailableDays,
		AvailableTimeSlots:          doctor.AvailableTimeSlots,
		ConsultationDurationMinutes: doctor.ConsultationDurationMinutes,
		CreatedAt:                   doctor.CreatedAt,
		UpdatedAt:                   doctor.UpdatedAt,
	}

	for _, assoc := range doctor.Clinics {
		response.Clinics = append(response.Clinics, *DoctorClinicToResponse(&assoc))
	}

	return response
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}

// DoctorClinicToResponse converts a DoctorClinic association to its DTO
func DoctorClinicToResponse(assoc *entity.DoctorClinic) *dto.DoctorClinicResponse {
	if assoc == nil {
		return nil
	}

	response := &dto.DoctorClinicResponse{
		ID:              assoc.ID,
		DoctorID:        assoc.DoctorID,
		ClinicID:        assoc.ClinicID,
		IsPrimary:       assoc.IsPrimary,
		StartDate:       assoc.StartDate,
		EndDate:         assoc.EndDate,
		ConsultationFee: decimalToFloat(assoc.ConsultationFee),
		Department:      assoc.Department,
		Designation:     assoc.Designation,
		Status:          assoc.Status,
	}

	if assoc.Clinic.Name != "" {
		response.ClinicName = assoc.Clinic.Name
	}

	return response
}

// NearbyDoctorsToResponses converts the distance-annotated search rows
func NearbyDoctorsToResponses(rows []entity.NearbyDoctor) []dto.NearbyDoctorResponse {
	responses := make([]dto.NearbyDoctorResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.NearbyDoctorResponse{
			DoctorResponse: *DoctorToResponse(&row.Doctor),
			ClinicID:       row.ClinicID,
			ClinicName:     row.ClinicName,
			DistanceKM:     row.DistanceKM,
		}
	}
	return responses
}
