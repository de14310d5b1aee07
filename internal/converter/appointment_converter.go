package converter

import (
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		DoctorID:         appointment.DoctorID,
		ClinicID:         appointment.ClinicID,
		DoctorClinicID:   appointment.DoctorClinicID,
		DoctorName:       appointment.DoctorName,
		ClinicName:       appointment.ClinicName,
		AppointmentAt:    appointment.AppointmentAt,
		AppointmentEndAt: appointment.AppointmentEndAt,
		Reason:           appointment.Reason,
		ContactPhone:     appointment.ContactPhone,
		Status:           string(appointment.Status),
		Notes:            appointment.Notes,
		Source:           appointment.Source,
		CancelledAt:      appointment.CancelledAt,
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
