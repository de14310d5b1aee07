package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"/doctors", 1, 20},
		{"/doctors?page=3&page_size=50", 3, 50},
		{"/doctors?page=0&page_size=-5", 1, 20},
		{"/doctors?page=abc&page_size=xyz", 1, 20},
		{"/doctors?page_size=500", 1, 100},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		page, pageSize := parsePagination(r)
		assert.Equal(t, tt.wantPage, page, tt.url)
		assert.Equal(t, tt.wantPageSize, pageSize, tt.url)
	}
}

func TestParseNearbyQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/clinics/nearby?latitude=-6.2&longitude=106.81&radius_km=25", nil)
	query, ok := parseNearbyQuery(r)
	require.True(t, ok)
	assert.Equal(t, -6.2, query.Latitude)
	assert.Equal(t, 106.81, query.Longitude)
	assert.Equal(t, 25.0, query.RadiusKM)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PageSize)
}

func TestParseNearbyQueryDefaultRadius(t *testing.T) {
	r := httptest.NewRequest("GET", "/clinics/nearby?latitude=0&longitude=0", nil)
	query, ok := parseNearbyQuery(r)
	require.True(t, ok)
	assert.Equal(t, 10.0, query.RadiusKM)
}

func TestParseNearbyQueryClampsRadius(t *testing.T) {
	r := httptest.NewRequest("GET", "/clinics/nearby?latitude=1&longitude=1&radius_km=5000", nil)
	query, ok := parseNearbyQuery(r)
	require.True(t, ok)
	assert.Equal(t, maxRadiusKM, query.RadiusKM)
}

func TestParseNearbyQueryRejectsBadInput(t *testing.T) {
	bad := []string{
		"/clinics/nearby",
		"/clinics/nearby?latitude=91&longitude=0",
		"/clinics/nearby?latitude=0&longitude=181",
		"/clinics/nearby?latitude=abc&longitude=0",
		"/clinics/nearby?lat=1&lng=1",
		"/clinics/nearby?latitude=0&longitude=0&radius_km=-1",
		"/clinics/nearby?latitude=0&longitude=0&radius_km=abc",
	}

	for _, url := range bad {
		r := httptest.NewRequest("GET", url, nil)
		_, ok := parseNearbyQuery(r)
		assert.False(t, ok, url)
	}
}
