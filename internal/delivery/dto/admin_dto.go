package dto

// Response DTOs

type DashboardStatsResponse struct {
	TotalUsers            int64            `json:"total_users"`
	UsersByRole           map[string]int64 `json:"users_by_role"`
	TotalAppointments     int64            `json:"total_appointments"`
	AppointmentsByStatus  map[string]int64 `json:"appointments_by_status"`
	TotalDoctors          int64            `json:"total_doctors"`
	TotalClinics          int64            `json:"total_clinics"`
	TotalPharmacies       int64            `json:"total_pharmacies"`
	NotificationsByStatus map[string]int64 `json:"notifications_by_status"`
}
