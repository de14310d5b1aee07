package repository

import (
	"errors"
	"time"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pushTokenRepository struct{}

func NewPushTokenRepository() domainRepo.PushTokenRepository {
	return &pushTokenRepository{}
}

func (r *pushTokenRepository) FindByUserAndToken(db *gorm.DB, userID uuid.UUID, token string) (*entity.PushToken, error) {
	var pt entity.PushToken
	err := db.Where("user_id = ? AND fcm_token = ?", userID, token).First(&pt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pt, nil
}

func (r *pushTokenRepository) Create(db *gorm.DB, token *entity.PushToken) error {
	return db.Create(token).Error
}

func (r *pushTokenRepository) Update(db *gorm.DB, token *entity.PushToken) error {
	return db.Save(token).Error
}

func (r *pushTokenRepository) DeactivateOthersOnPlatform(db *gorm.DB, userID uuid.UUID, platform, keepToken string) (int64, error) {
	result := db.Model(&entity.PushToken{}).
		Where("user_id = ? AND platform = ? AND fcm_token != ? AND is_active = true",
			userID, platform, keepToken).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *pushTokenRepository) DeactivateByToken(db *gorm.DB, userID uuid.UUID, token string) (int64, error) {
	result := db.Model(&entity.PushToken{}).
		Where("user_id = ? AND fcm_token = ? AND is_active = true", userID, token).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *pushTokenRepository) DeactivateAllForUser(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.PushToken{}).
		Where("user_id = ? AND is_active = true", userID).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *pushTokenRepository) ListActiveByUser(db *gorm.DB, userID uuid.UUID) ([]entity.PushToken, error) {
	var tokens []entity.PushToken
	err := db.Where("user_id = ? AND is_active = true", userID).
		Order("created_at ASC").
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *pushTokenRepository) TouchLastUsed(db *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Model(&entity.PushToken{}).
		Where("id IN ?", ids).
		Update("last_used_at", time.Now()).Error
}
