package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"medico-backend/config"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/service"
	"medico-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// redisRecorder is a go-redis hook that captures every command and
// short-circuits it, so cache calls run without a server. Unanswered
// commands resolve to their zero value, which the fail-open cache reads
// as a miss.
type redisRecorder struct {
	commands []redis.Cmder
}

func (r *redisRecorder) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (r *redisRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		r.commands = append(r.commands, cmd)
		return nil
	}
}

func (r *redisRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		r.commands = append(r.commands, cmds...)
		return nil
	}
}

func (r *redisRecorder) saw(name, key string) bool {
	for _, cmd := range r.commands {
		args := cmd.Args()
		if cmd.Name() == name && len(args) > 1 && fmt.Sprint(args[1]) == key {
			return true
		}
	}
	return false
}

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return s.user, nil
}

func (s *stubUserRepo) FindByFirebaseUID(db *gorm.DB, firebaseUID string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(db *gorm.DB, user *entity.User) error { return nil }

func (s *stubUserRepo) List(db *gorm.DB, filter entity.UserFilter) ([]entity.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) CountByRole(db *gorm.DB) (map[string]int64, error) { return nil, nil }

func newAuthTestUsecase(user *entity.User) (*authUsecase, *redisRecorder) {
	recorder := &redisRecorder{}
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	client.AddHook(recorder)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "refresh-flow-test-secret",
		AccessExpiry:  30 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	return &authUsecase{
		db:         &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}},
		log:        log,
		userRepo:   &stubUserRepo{user: user},
		jwtService: jwtService,
		cache:      service.NewCacheManager(client, log),
	}, recorder
}

func activePatient() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "patient@example.com",
		Role:     entity.RolePatient,
		IsActive: true,
	}
}

func TestRefreshTokenKeepsPresentedTokenValid(t *testing.T) {
	user := activePatient()
	u, recorder := newAuthTestUsecase(user)

	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	resp, err := u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The presented token is checked against the blacklist but never
	// written to it; it stays usable until logout or expiry.
	key := service.BlacklistCacheKey(refreshToken)
	assert.True(t, recorder.saw("exists", key))
	assert.False(t, recorder.saw("set", key))
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	user := activePatient()
	u, _ := newAuthTestUsecase(user)

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRejectsDeactivatedUser(t *testing.T) {
	user := activePatient()
	user.IsActive = false
	u, _ := newAuthTestUsecase(user)

	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	_, err = u.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, ErrUserDeactivated)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	user := activePatient()
	u, recorder := newAuthTestUsecase(user)

	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	err = u.Logout(context.Background(), &dto.LogoutRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	assert.True(t, recorder.saw("set", service.BlacklistCacheKey(refreshToken)))
}
