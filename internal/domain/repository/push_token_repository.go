package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PushTokenRepository interface {
	FindByUserAndToken(db *gorm.DB, userID uuid.UUID, token string) (*entity.PushToken, error)
	Create(db *gorm.DB, token *entity.PushToken) error
	Update(db *gorm.DB, token *entity.PushToken) error
	// DeactivateOthersOnPlatform disables every other token the user has
	// registered for the platform, keeping one live token per device class.
	DeactivateOthersOnPlatform(db *gorm.DB, userID uuid.UUID, platform, keepToken string) (int64, error)
	DeactivateByToken(db *gorm.DB, userID uuid.UUID, token string) (int64, error)
	DeactivateAllForUser(db *gorm.DB, userID uuid.UUID) (int64, error)
	ListActiveByUser(db *gorm.DB, userID uuid.UUID) ([]entity.PushToken, error)
	TouchLastUsed(db *gorm.DB, ids []uuid.UUID) error
}
