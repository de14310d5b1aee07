package handler

import (
	"net/http"
	"strconv"

	"medico-backend/internal/domain/entity"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultRadiusKM = 10.0
	maxRadiusKM     = 100.0
)

func parsePagination(r *http.Request) (page, pageSize int) {
	page = 1
	pageSize = defaultPageSize

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		pageSize = v
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}
	return page, pageSize
}

// parseNearbyQuery reads latitude/longitude/radius_km query parameters,
// clamping the radius and validating the coordinate ranges.
func parseNearbyQuery(r *http.Request) (entity.NearbyQuery, bool) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("latitude"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return entity.NearbyQuery{}, false
	}
	lng, err := strconv.ParseFloat(q.Get("longitude"), 64)
	if err != nil || lng < -180 || lng > 180 {
		return entity.NearbyQuery{}, false
	}

	radius := defaultRadiusKM
	if raw := q.Get("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return entity.NearbyQuery{}, false
		}
		radius = parsed
		if radius > maxRadiusKM {
			radius = maxRadiusKM
		}
	}

	page, pageSize := parsePagination(r)

	return entity.NearbyQuery{
		Latitude:  lat,
		Longitude: lng,
		RadiusKM:  radius,
		Page:      page,
		PageSize:  pageSize,
	}, true
}
