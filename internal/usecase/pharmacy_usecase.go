package usecase

import (
	"context"
	"errors"

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
	ErrPharmacyNotFound        = errors.New("pharmacy not found")
	ErrPharmacyAlreadyVerified = errors.New("pharmacy already verified")
)

type PharmacyUsecase interface {
	Create(ctx context.Context, req *dto.CreatePharmacyRequest) (*dto.PharmacyResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PharmacyResponse, error)
	List(ctx context.Context, filter entity.PharmacyFilter) (*dto.PharmacyListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePharmacyRequest) (*dto.PharmacyResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Verify(ctx context.Context, id uuid.UUID) (*dto.PharmacyResponse, error)
	SearchNearby(ctx context.Context, query entity.NearbyQuery) (*dto.NearbyPharmacyListResponse, error)
}

type pharmacyUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	pharmacyRepo repository.PharmacyRepository
	cache        *service.CacheManager
}

func NewPharmacyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	pharmacyRepo repository.PharmacyRepository,
	cache *service.CacheManager,
) PharmacyUsecase {
	return &pharmacyUsecase{
		db:           db,
		log:          log,
		pharmacyRepo: pharmacyRepo,
		cache:        cache,
	}
}

// Create persists the pharmacy, its location and its weekly hours in one
// transaction. The PostGIS point is derived from the submitted coordinates
// before commit so radius search picks the row up immediately.
func (u *pharmacyUsecase) Create(ctx context.Context, req *dto.CreatePharmacyRequest) (*dto.PharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacy := &entity.Pharmacy{
		Name:             req.Name,
		Description:      req.Description,
		Phone:            req.Phone,
		Email:            req.Email,
		SupportsDelivery: req.SupportsDelivery,
		SupportsPickup:   req.SupportsPickup,
		IsActive:         true,
	}

	if err := u.pharmacyRepo.Create(tx, pharmacy); err != nil {
		u.log.Warnf("Failed to create pharmacy: %+v", err)
		return nil, err
	}

	if err := u.writeLocation(tx, pharmacy.ID, req.Location); err != nil {
		return nil, err
	}

	if len(req.Hours) > 0 {
		if err := u.pharmacyRepo.ReplaceHours(tx, pharmacy.ID, hoursFromRequests(req.Hours)); err != nil {
			u.log.Warnf("Failed to store pharmacy hours: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Pharmacy created: id=%s name=%s", pharmacy.ID, pharmacy.Name)

	return u.reload(ctx, pharmacy.ID)
}

func (u *pharmacyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PharmacyResponse, error) {
	var cached dto.PharmacyResponse
	if u.cache.GetJSON(ctx, service.PharmacyCacheKey(id), &cached) {
		return &cached, nil
	}

	pharmacy, err := u.pharmacyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy %s: %+v", id, err)
		return nil, err
	}
	if pharmacy == nil {
		return nil, ErrPharmacyNotFound
	}

	response := converter.PharmacyToResponse(pharmacy)
	u.cache.SetJSON(ctx, service.PharmacyCacheKey(id), response, service.UserCacheTTL)

	return response, nil
}

func (u *pharmacyUsecase) List(ctx context.Context, filter entity.PharmacyFilter) (*dto.PharmacyListResponse, error) {
	pharmacies, total, err := u.pharmacyRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list pharmacies: %+v", err)
		return nil, err
	}

	return &dto.PharmacyListResponse{
		Pharmacies: converter.PharmaciesToResponses(pharmacies),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (u *pharmacyUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePharmacyRequest) (*dto.PharmacyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pharmacy, err := u.pharmacyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy %s: %+v", id, err)
		return nil, err
	}
	if pharmacy == nil {
		return nil, ErrPharmacyNotFound
	}

	if req.Name != nil {
		pharmacy.Name = *req.Name
	}
	if req.Description != nil {
		pharmacy.Description = *req.Description
	}
	if req.Phone != nil {
		pharmacy.Phone = *req.Phone
	}
	if req.Email != nil {
		pharmacy.Email = *req.Email
	}
	if req.SupportsDelivery != nil {
		pharmacy.SupportsDelivery = *req.SupportsDelivery
	}
	if req.SupportsPickup != nil {
		pharmacy.SupportsPickup = *req.SupportsPickup
	}

	if err := u.pharmacyRepo.Update(tx, pharmacy); err != nil {
		u.log.Warnf("Failed to update pharmacy %s: %+v", id, err)
		return nil, err
	}

	if req.Location != nil {
		if err := u.writeLocation(tx, id, req.Location); err != nil {
			return nil, err
		}
	}

	if req.Hours != nil {
		if err := u.pharmacyRepo.ReplaceHours(tx, id, hoursFromRequests(req.Hours)); err != nil {
			u.log.Warnf("Failed to replace pharmacy hours: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Delete(ctx, service.PharmacyCacheKey(id))
	return u.reload(ctx, id)
}

func (u *pharmacyUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	affected, err := u.pharmacyRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate pharmacy %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPharmacyNotFound
	}

	u.cache.Delete(ctx, service.PharmacyCacheKey(id))
	u.log.Infof("Pharmacy deactivated: id=%s", id)
	return nil
}

func (u *pharmacyUsecase) Verify(ctx context.Context, id uuid.UUID) (*dto.PharmacyResponse, error) {
	affected, err := u.pharmacyRepo.Verify(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to verify pharmacy %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Either missing or already verified; disambiguate for the caller.
		existing, err := u.pharmacyRepo.FindByID(u.db.WithContext(ctx), id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrPharmacyNotFound
		}
		return nil, ErrPharmacyAlreadyVerified
	}

	u.cache.Delete(ctx, service.PharmacyCacheKey(id))
	return u.reload(ctx, id)
}

func (u *pharmacyUsecase) SearchNearby(ctx context.Context, query entity.NearbyQuery) (*dto.NearbyPharmacyListResponse, error) {
	rows, err := u.pharmacyRepo.SearchNearby(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Nearby pharmacy search failed: %+v", err)
		return nil, err
	}

	return &dto.NearbyPharmacyListResponse{
		Pharmacies: converter.NearbyPharmaciesToResponses(rows),
		Total:      len(rows),
	}, nil
}

// writeLocation upserts the address row and recomputes the geography
// point inside the caller's transaction.
func (u *pharmacyUsecase) writeLocation(tx *gorm.DB, pharmacyID uuid.UUID, loc *dto.PharmacyLocationRequest) error {
	location := &entity.PharmacyLocation{
		PharmacyID:  pharmacyID,
		AddressLine: loc.AddressLine,
		City:        loc.City,
		State:       loc.State,
		Country:     loc.Country,
		Pincode:     loc.Pincode,
		Latitude:    decimal.NewFromFloat(loc.Latitude),
		Longitude:   decimal.NewFromFloat(loc.Longitude),
	}

	if err := u.pharmacyRepo.UpsertLocation(tx, location); err != nil {
		u.log.Warnf("Failed to upsert pharmacy location: %+v", err)
		return err
	}
	if err := u.pharmacyRepo.SyncGeography(tx, pharmacyID); err != nil {
		u.log.Warnf("Failed to sync pharmacy geography: %+v", err)
		return err
	}
	return nil
}

func (u *pharmacyUsecase) reload(ctx context.Context, id uuid.UUID) (*dto.PharmacyResponse, error) {
	pharmacy, err := u.pharmacyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, ErrPharmacyNotFound
	}
	return converter.PharmacyToResponse(pharmacy), nil
}

func hoursFromRequests(reqs []dto.PharmacyHoursRequest) []entity.PharmacyHours {
	hours := make([]entity.PharmacyHours, len(reqs))
	for i, h := range reqs {
		hours[i] = entity.PharmacyHours{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		}
	}
	return hours
}
