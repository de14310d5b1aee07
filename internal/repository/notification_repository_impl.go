package repository

import (
	"errors"
	"time"

	"medico-backend/internal/domain/entity"
	domainRepo "medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error) {
	var notification entity.Notification
	err := db.Preload("Deliveries").Where("id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) Update(db *gorm.DB, notification *entity.Notification) error {
	return db.Omit("Deliveries").Save(notification).Error
}

func (r *notificationRepository) MarkRead(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ? AND status != ?", id, userID, entity.NotificationStatusRead).
		Updates(map[string]interface{}{
			"status":  entity.NotificationStatusRead,
			"read_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) List(db *gorm.DB, filter entity.NotificationFilter) ([]entity.Notification, int64, error) {
	query := db.Model(&entity.Notification{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("notification_type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []entity.Notification
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.Model(&entity.Notification{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *notificationRepository) CreateDeliveries(db *gorm.DB, deliveries []entity.NotificationDelivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	return db.Create(&deliveries).Error
}

func (r *notificationRepository) UpdateDelivery(db *gorm.DB, delivery *entity.NotificationDelivery) error {
	return db.Save(delivery).Error
}

func (r *notificationRepository) ListDeliveries(db *gorm.DB, notificationID uuid.UUID) ([]entity.NotificationDelivery, error) {
	var deliveries []entity.NotificationDelivery
	err := db.Where("notification_id = ?", notificationID).
		Order("created_at ASC").
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}
