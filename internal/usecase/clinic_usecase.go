package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medico-backend/internal/converter"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/domain/repository"
	"medico-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrClinicNotFound   = errors.New("clinic not found")
	ErrClinicSlugExists = errors.New("clinic slug already in use")
)

type ClinicUsecase interface {
	Create(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error)
	List(ctx context.Context, filter entity.ClinicFilter) (*dto.ClinicListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SearchNearby(ctx context.Context, query entity.NearbyQuery) (*dto.NearbyClinicListResponse, error)
}

type clinicUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clinicRepo repository.ClinicRepository
	cache      *service.CacheManager
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	cache *service.CacheManager,
) ClinicUsecase {
	return &clinicUsecase{
		db:         db,
		log:        log,
		clinicRepo: clinicRepo,
		cache:      cache,
	}
}

func (u *clinicUsecase) Create(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}

	clinic := &entity.Clinic{
		Name:         req.Name,
		Slug:         slug,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		Contacts:     req.Contacts,
		Address:      req.Address,
		OpeningHours: req.OpeningHours,
		Status:       entity.ClinicStatusActive,
		IsActive:     true,
	}
	if req.Latitude != nil {
		lat := decimal.NewFromFloat(*req.Latitude)
		clinic.Latitude = &lat
	}
	if req.Longitude != nil {
		lng := decimal.NewFromFloat(*req.Longitude)
		clinic.Longitude = &lng
	}

	if err := u.clinicRepo.Create(u.db.WithContext(ctx), clinic); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrClinicSlugExists
		}
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	u.cache.DeletePattern(ctx, service.ClinicListCachePattern)
	u.log.Infof("Clinic created: id=%s name=%s", clinic.ID, clinic.Name)

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error) {
	var cached dto.ClinicResponse
	if u.cache.GetJSON(ctx, service.ClinicCacheKey(id), &cached) {
		return &cached, nil
	}

	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	response := converter.ClinicToResponse(clinic)
	u.cache.SetJSON(ctx, service.ClinicCacheKey(id), response, service.UserCacheTTL)

	return response, nil
}

func (u *clinicUsecase) List(ctx context.Context, filter entity.ClinicFilter) (*dto.ClinicListResponse, error) {
	cacheKey := fmt.Sprintf("clinic:list:%d:%d:%s:%s:%s",
		filter.Page, filter.PageSize, filter.Status, filter.City, filter.Search)

	var cached dto.ClinicListResponse
	if u.cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	clinics, total, err := u.clinicRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list clinics: %+v", err)
		return nil, err
	}

	response := &dto.ClinicListResponse{
		Clinics:  converter.ClinicsToResponses(clinics),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	u.cache.SetJSON(ctx, cacheKey, response, service.ListCacheTTL)

	return response, nil
}

func (u *clinicUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if req.Name != nil {
		clinic.Name = *req.Name
	}
	if req.Description != nil {
		clinic.Description = *req.Description
	}
	if req.LogoURL != nil {
		clinic.LogoURL = *req.LogoURL
	}
	if req.Contacts != nil {
		clinic.Contacts = req.Contacts
	}
	if req.Address != nil {
		clinic.Address = *req.Address
	}
	if req.Latitude != nil {
		lat := decimal.NewFromFloat(*req.Latitude)
		clinic.Latitude = &lat
	}
	if req.Longitude != nil {
		lng := decimal.NewFromFloat(*req.Longitude)
		clinic.Longitude = &lng
	}
	if req.OpeningHours != nil {
		clinic.OpeningHours = req.OpeningHours
	}
	if req.Status != nil {
		clinic.Status = entity.ClinicStatus(*req.Status)
		clinic.IsActive = clinic.Status == entity.ClinicStatusActive
	}

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic %s: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidate(ctx, id)
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.clinicRepo.SoftDelete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete clinic %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrClinicNotFound
	}

	u.invalidate(ctx, id)
	u.log.Infof("Clinic deleted: id=%s", id)
	return nil
}

func (u *clinicUsecase) SearchNearby(ctx context.Context, query entity.NearbyQuery) (*dto.NearbyClinicListResponse, error) {
	rows, err := u.clinicRepo.SearchNearby(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Nearby clinic search failed: %+v", err)
		return nil, err
	}

	return &dto.NearbyClinicListResponse{
		Clinics: converter.NearbyClinicsToResponses(rows),
		Total:   len(rows),
	}, nil
}

func (u *clinicUsecase) invalidate(ctx context.Context, id uuid.UUID) {
	u.cache.Delete(ctx, service.ClinicCacheKey(id))
	u.cache.DeletePattern(ctx, service.ClinicListCachePattern)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
