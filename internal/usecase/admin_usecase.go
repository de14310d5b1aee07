package usecase

import (
	"context"

	"medico-backend/internal/converter"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	ListUsers(ctx context.Context, filter entity.UserFilter) (*dto.UserListResponse, error)
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type adminUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	appointmentRepo  repository.AppointmentRepository
	doctorRepo       repository.DoctorRepository
	clinicRepo       repository.ClinicRepository
	pharmacyRepo     repository.PharmacyRepository
	notificationRepo repository.NotificationRepository
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	clinicRepo repository.ClinicRepository,
	pharmacyRepo repository.PharmacyRepository,
	notificationRepo repository.NotificationRepository,
) AdminUsecase {
	return &adminUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		appointmentRepo:  appointmentRepo,
		doctorRepo:       doctorRepo,
		clinicRepo:       clinicRepo,
		pharmacyRepo:     pharmacyRepo,
		notificationRepo: notificationRepo,
	}
}

func (u *adminUsecase) ListUsers(ctx context.Context, filter entity.UserFilter) (*dto.UserListResponse, error) {
	users, total, err := u.userRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users:    converter.UsersToResponses(users),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (u *adminUsecase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	db := u.db.WithContext(ctx)

	usersByRole, err := u.userRepo.CountByRole(db)
	if err != nil {
		u.log.Warnf("Failed to count users by role: %+v", err)
		return nil, err
	}
	var totalUsers int64
	for _, n := range usersByRole {
		totalUsers += n
	}

	appointmentsByStatus, err := u.appointmentRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}
	var totalAppointments int64
	for _, n := range appointmentsByStatus {
		totalAppointments += n
	}

	totalDoctors, err := u.doctorRepo.Count(db)
	if err != nil {
		return nil, err
	}
	totalClinics, err := u.clinicRepo.Count(db)
	if err != nil {
		return nil, err
	}
	totalPharmacies, err := u.pharmacyRepo.Count(db)
	if err != nil {
		return nil, err
	}

	notificationsByStatus, err := u.notificationRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count notifications: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalUsers:            totalUsers,
		UsersByRole:           usersByRole,
		TotalAppointments:     totalAppointments,
		AppointmentsByStatus:  appointmentsByStatus,
		TotalDoctors:          totalDoctors,
		TotalClinics:          totalClinics,
		TotalPharmacies:       totalPharmacies,
		NotificationsByStatus: notificationsByStatus,
	}, nil
}
