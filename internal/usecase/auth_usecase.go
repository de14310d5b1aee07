package usecase

import (
	"context"
	"errors"
	"time"

	"medico-backend/internal/converter"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/domain/repository"
	"medico-backend/internal/service"
	"medico-backend/pkg/jwt"

	"firebase.google.com/go/auth"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidFirebaseToken = errors.New("invalid or expired Firebase ID token")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserDeactivated      = errors.New("account has been deactivated")
)

type AuthUsecase interface {
	FirebaseLogin(ctx context.Context, req *dto.FirebaseLoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	roleRecordRepo repository.RoleRecordRepository
	pushTokenRepo  repository.PushTokenRepository
	firebaseAuth   *auth.Client
	jwtService     *jwt.JWTService
	cache          *service.CacheManager
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRecordRepo repository.RoleRecordRepository,
	pushTokenRepo repository.PushTokenRepository,
	firebaseAuth *auth.Client,
	jwtService *jwt.JWTService,
	cache *service.CacheManager,
) AuthUsecase {
	return &authUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		roleRecordRepo: roleRecordRepo,
		pushTokenRepo:  pushTokenRepo,
		firebaseAuth:   firebaseAuth,
		jwtService:     jwtService,
		cache:          cache,
	}
}

// FirebaseLogin verifies a Firebase ID token and exchanges it for the
// backend's own session tokens, provisioning the user row on first login.
func (u *authUsecase) FirebaseLogin(ctx context.Context, req *dto.FirebaseLoginRequest) (*dto.TokenResponse, error) {
	token, err := u.firebaseAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		u.log.Warnf("Firebase token verification failed: %+v", err)
		return nil, ErrInvalidFirebaseToken
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByFirebaseUID(tx, token.UID)
	if err != nil {
		u.log.Warnf("Failed to find user by firebase uid: %+v", err)
		return nil, err
	}

	isNewUser := user == nil
	now := time.Now()

	if isNewUser {
		provider := token.Firebase.SignInProvider
		if provider == "" {
			provider = "google"
		}

		// New identities start as patients; the satellite row is created
		// in the same transaction.
		user = &entity.User{
			FirebaseUID:   token.UID,
			Email:         stringClaim(token.Claims, "email"),
			EmailVerified: boolClaim(token.Claims, "email_verified"),
			AuthProvider:  provider,
			FullName:      stringClaim(token.Claims, "name"),
			PhotoURL:      stringClaim(token.Claims, "picture"),
			Role:          entity.RolePatient,
			IsActive:      true,
			LastLoginAt:   &now,
		}

		if err := u.userRepo.Create(tx, user); err != nil {
			if isDuplicateKeyError(err, "firebase_uid") {
				// Lost a first-login race; the other request provisioned
				// the row.
				u.log.Infof("Concurrent first login for firebase uid %s", token.UID)
				return nil, ErrInvalidFirebaseToken
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return nil, err
		}

		if err := u.roleRecordRepo.CreatePatientIfAbsent(tx, user.ID); err != nil {
			u.log.Warnf("Failed to create patient record: %+v", err)
			return nil, err
		}
	} else {
		if !user.IsActive {
			return nil, ErrUserDeactivated
		}

		user.LastLoginAt = &now
		if email := stringClaim(token.Claims, "email"); email != "" {
			user.Email = email
		}
		user.EmailVerified = boolClaim(token.Claims, "email_verified")

		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user on login: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Delete(ctx, service.UserCacheKey(user.ID))

	return u.issueTokens(user, isNewUser)
}

// RefreshToken exchanges a live refresh token for a new pair carrying the
// user's current role. The presented token is checked against the
// blacklist but stays valid until logout or expiry, so several devices
// can share it.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	if u.cache.Exists(ctx, service.BlacklistCacheKey(req.RefreshToken)) {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", claims.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserDeactivated
	}

	return u.issueTokens(user, false)
}

// Logout blacklists the refresh token; the short-lived access token is
// left to expire on its own. The device's push token, when provided, is
// deactivated so a signed-out device stops receiving pushes.
func (u *authUsecase) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		// An already-invalid token needs no blacklisting.
		return nil
	}
	if claims.TokenType != jwt.RefreshToken {
		return ErrInvalidToken
	}

	u.blacklist(ctx, req.RefreshToken, claims)

	if req.PushToken != "" {
		if _, err := u.pushTokenRepo.DeactivateByToken(u.db.WithContext(ctx), claims.UserID, req.PushToken); err != nil {
			u.log.Warnf("Failed to deactivate push token on logout for %s: %+v", claims.UserID, err)
		}
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	var cached dto.UserResponse
	if u.cache.GetJSON(ctx, service.UserCacheKey(userID), &cached) {
		return &cached, nil
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := converter.UserToResponse(user)
	u.cache.SetJSON(ctx, service.UserCacheKey(userID), response, service.UserCacheTTL)

	return response, nil
}

func (u *authUsecase) issueTokens(user *entity.User, isNewUser bool) (*dto.TokenResponse, error) {
	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:         converter.UserToResponse(user),
		IsNewUser:    isNewUser,
	}, nil
}

// blacklist stores the token for its remaining lifetime; an expired token
// no longer needs an entry.
func (u *authUsecase) blacklist(ctx context.Context, token string, claims *jwt.Claims) {
	if claims.ExpiresAt == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	u.cache.SetRaw(ctx, service.BlacklistCacheKey(token), "revoked", ttl)
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(claims map[string]interface{}, key string) bool {
	v, ok := claims[key].(bool)
	return ok && v
}
