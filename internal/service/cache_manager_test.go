package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCacheKeys(t *testing.T) {
	id := uuid.MustParse("c7c6d5cc-7c3c-4a0e-8a36-9c8f3d51a111")

	assert.Equal(t, "user:c7c6d5cc-7c3c-4a0e-8a36-9c8f3d51a111", UserCacheKey(id))
	assert.Equal(t, "clinic:c7c6d5cc-7c3c-4a0e-8a36-9c8f3d51a111", ClinicCacheKey(id))
	assert.Equal(t, "doctor:c7c6d5cc-7c3c-4a0e-8a36-9c8f3d51a111", DoctorCacheKey(id))
	assert.Equal(t, "pharmacy:c7c6d5cc-7c3c-4a0e-8a36-9c8f3d51a111", PharmacyCacheKey(id))
}

func TestBlacklistCacheKey(t *testing.T) {
	assert.Equal(t, "blacklist:abc.def.ghi", BlacklistCacheKey("abc.def.ghi"))
}

func TestEnvironmentCacheKeyRounding(t *testing.T) {
	// Coordinates within ~110m round to the same key.
	assert.Equal(t, EnvironmentCacheKey(-6.2001, 106.8164), EnvironmentCacheKey(-6.20012, 106.81641))
	assert.NotEqual(t, EnvironmentCacheKey(-6.200, 106.816), EnvironmentCacheKey(-6.201, 106.816))
	assert.Equal(t, "env:data:-6.200:106.816", EnvironmentCacheKey(-6.2, 106.816))
}
