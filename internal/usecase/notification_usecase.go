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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidPlatform      = errors.New("invalid platform")
	ErrPushTokenNotFound    = errors.New("push token not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

const broadcastPageSize = 200

type NotificationUsecase interface {
	RegisterToken(ctx context.Context, userID uuid.UUID, req *dto.RegisterPushTokenRequest) (*dto.PushTokenResponse, error)
	DeactivateToken(ctx context.Context, userID uuid.UUID, req *dto.DeactivatePushTokenRequest) error
	SendToUser(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error)
	Broadcast(ctx context.Context, req *dto.BroadcastNotificationRequest) (*dto.BroadcastResultResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page, pageSize int) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	ListLogs(ctx context.Context, filter entity.NotificationFilter) (*dto.NotificationListResponse, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	pushTokenRepo    repository.PushTokenRepository
	userRepo         repository.UserRepository
	pushSender       service.PushSender
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	pushTokenRepo repository.PushTokenRepository,
	userRepo repository.UserRepository,
	pushSender service.PushSender,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		pushTokenRepo:    pushTokenRepo,
		userRepo:         userRepo,
		pushSender:       pushSender,
	}
}

// RegisterToken upserts a device token. The user keeps at most one active
// token per platform: registering deactivates the others.
func (u *notificationUsecase) RegisterToken(ctx context.Context, userID uuid.UUID, req *dto.RegisterPushTokenRequest) (*dto.PushTokenResponse, error) {
	if !entity.ValidPlatform(req.Platform) {
		return nil, ErrInvalidPlatform
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.pushTokenRepo.DeactivateOthersOnPlatform(tx, userID, req.Platform, req.Token); err != nil {
		u.log.Warnf("Failed to deactivate old tokens for %s: %+v", userID, err)
		return nil, err
	}

	now := time.Now()
	token, err := u.pushTokenRepo.FindByUserAndToken(tx, userID, req.Token)
	if err != nil {
		u.log.Warnf("Failed to look up push token for %s: %+v", userID, err)
		return nil, err
	}

	if token == nil {
		token = &entity.PushToken{
			UserID:     userID,
			FCMToken:   req.Token,
			Platform:   req.Platform,
			IsActive:   true,
			LastUsedAt: &now,
		}
		if err := u.pushTokenRepo.Create(tx, token); err != nil {
			u.log.Warnf("Failed to create push token for %s: %+v", userID, err)
			return nil, err
		}
	} else {
		token.Platform = req.Platform
		token.IsActive = true
		token.LastUsedAt = &now
		if err := u.pushTokenRepo.Update(tx, token); err != nil {
			u.log.Warnf("Failed to update push token for %s: %+v", userID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PushTokenToResponse(token), nil
}

func (u *notificationUsecase) DeactivateToken(ctx context.Context, userID uuid.UUID, req *dto.DeactivatePushTokenRequest) error {
	if req.Token == "" {
		if _, err := u.pushTokenRepo.DeactivateAllForUser(u.db.WithContext(ctx), userID); err != nil {
			u.log.Warnf("Failed to deactivate push tokens for %s: %+v", userID, err)
			return err
		}
		return nil
	}

	affected, err := u.pushTokenRepo.DeactivateByToken(u.db.WithContext(ctx), userID, req.Token)
	if err != nil {
		u.log.Warnf("Failed to deactivate push token for %s: %+v", userID, err)
		return err
	}
	if affected == 0 {
		return ErrPushTokenNotFound
	}
	return nil
}

// SendToUser fans one logical notification out to every active device
// token in a single multicast call, recording a delivery row per token.
//
// Flow:
//  1. Persist the notification as pending
//  2. Load active tokens; zero tokens fails the notification with no
//     delivery rows
//  3. Create pending delivery rows, mark the notification sent
//  4. One batched FCM call for the whole token list
//  5. Record the per-token outcome on each delivery row; tokens FCM
//     reports as unregistered are deactivated
//  6. Notification becomes delivered if at least one token succeeded,
//     failed otherwise
func (u *notificationUsecase) SendToUser(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error) {
	notificationType := req.NotificationType
	if notificationType == "" {
		notificationType = entity.NotificationTypeOther
	}
	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}

	notification := &entity.Notification{
		UserID:           req.UserID,
		Title:            req.Title,
		Body:             req.Body,
		NotificationType: notificationType,
		Priority:         priority,
		Data:             req.Data,
		Status:           entity.NotificationStatusPending,
	}

	db := u.db.WithContext(ctx)

	if err := u.notificationRepo.Create(db, notification); err != nil {
		if isForeignKeyError(err, "user") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	tokens, err := u.pushTokenRepo.ListActiveByUser(db, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to list push tokens for %s: %+v", req.UserID, err)
		return nil, err
	}

	if len(tokens) == 0 {
		notification.Status = entity.NotificationStatusFailed
		notification.FailureReason = "no active tokens"
		if err := u.notificationRepo.Update(db, notification); err != nil {
			u.log.Warnf("Failed to mark notification failed: %+v", err)
			return nil, err
		}
		return converter.NotificationToResponse(notification), nil
	}

	deliveries := make([]entity.NotificationDelivery, len(tokens))
	tokenStrings := make([]string, len(tokens))
	for i, t := range tokens {
		deliveries[i] = entity.NotificationDelivery{
			NotificationID: notification.ID,
			PushTokenID:    t.ID,
			DeliveryStatus: entity.DeliveryStatusPending,
		}
		tokenStrings[i] = t.FCMToken
	}
	if err := u.notificationRepo.CreateDeliveries(db, deliveries); err != nil {
		u.log.Warnf("Failed to create delivery rows: %+v", err)
		return nil, err
	}

	now := time.Now()
	notification.Status = entity.NotificationStatusSent
	notification.SentAt = &now
	if err := u.notificationRepo.Update(db, notification); err != nil {
		u.log.Warnf("Failed to mark notification sent: %+v", err)
		return nil, err
	}

	data := map[string]string{"notification_id": notification.ID.String()}
	for k, v := range req.Data {
		if s, ok := v.(string); ok {
			data[k] = s
		}
	}

	results, err := u.pushSender.SendMulticast(ctx, tokenStrings, req.Title, req.Body, data, priority)
	if err != nil {
		// The whole batch failed before per-token evaluation.
		u.log.Warnf("Multicast send failed for notification %s: %+v", notification.ID, err)
		u.failAllDeliveries(db, notification, deliveries, err.Error())
		return converter.NotificationToResponse(notification), nil
	}

	successCount := 0
	var successIDs []uuid.UUID
	for i, result := range results {
		delivery := &deliveries[i]
		if result.Success {
			successCount++
			successIDs = append(successIDs, tokens[i].ID)
			delivery.DeliveryStatus = entity.DeliveryStatusSent
			delivery.FCMMessageID = result.MessageID
			stamped := time.Now()
			delivery.DeliveredAt = &stamped
		} else if result.InvalidToken {
			delivery.DeliveryStatus = entity.DeliveryStatusInvalidToken
			if result.Error != nil {
				delivery.FailureReason = result.Error.Error()
			}
			if _, err := u.pushTokenRepo.DeactivateByToken(db, req.UserID, result.Token); err != nil {
				u.log.Warnf("Failed to deactivate invalid token: %+v", err)
			}
		} else {
			delivery.DeliveryStatus = entity.DeliveryStatusFailed
			if result.Error != nil {
				delivery.FailureReason = result.Error.Error()
			}
		}
		if err := u.notificationRepo.UpdateDelivery(db, delivery); err != nil {
			u.log.Warnf("Failed to record delivery outcome: %+v", err)
		}
	}

	if err := u.pushTokenRepo.TouchLastUsed(db, successIDs); err != nil {
		u.log.Warnf("Failed to touch last_used_at: %+v", err)
	}

	if successCount > 0 {
		delivered := time.Now()
		notification.Status = entity.NotificationStatusDelivered
		notification.DeliveredAt = &delivered
	} else {
		notification.Status = entity.NotificationStatusFailed
		notification.FailureReason = "all deliveries failed"
	}
	if err := u.notificationRepo.Update(db, notification); err != nil {
		u.log.Warnf("Failed to record notification outcome: %+v", err)
		return nil, err
	}

	u.log.Infof("Notification %s: %d/%d deliveries succeeded", notification.ID, successCount, len(tokens))

	notification.Deliveries = deliveries
	return converter.NotificationToResponse(notification), nil
}

// Broadcast sends the same message to every matching user, one fan-out at
// a time. Individual failures do not stop the sweep.
func (u *notificationUsecase) Broadcast(ctx context.Context, req *dto.BroadcastNotificationRequest) (*dto.BroadcastResultResponse, error) {
	result := &dto.BroadcastResultResponse{}
	active := true
	page := 1

	for {
		users, total, err := u.userRepo.List(u.db.WithContext(ctx), entity.UserFilter{
			Role:     req.Role,
			IsActive: &active,
			Page:     page,
			PageSize: broadcastPageSize,
		})
		if err != nil {
			u.log.Warnf("Failed to list users for broadcast: %+v", err)
			return nil, err
		}
		result.TotalUsers = int(total)

		for _, user := range users {
			_, err := u.SendToUser(ctx, &dto.SendNotificationRequest{
				UserID:           user.ID,
				Title:            req.Title,
				Body:             req.Body,
				NotificationType: req.NotificationType,
				Priority:         req.Priority,
				Data:             req.Data,
			})
			if err != nil {
				result.Failed++
				u.log.Warnf("Broadcast to user %s failed: %+v", user.ID, err)
				continue
			}
			result.Sent++
		}

		if len(users) < broadcastPageSize {
			break
		}
		page++
	}

	u.log.Infof("Broadcast finished: %d sent, %d failed of %d users", result.Sent, result.Failed, result.TotalUsers)
	return result, nil
}

func (u *notificationUsecase) ListMine(ctx context.Context, userID uuid.UUID, page, pageSize int) (*dto.NotificationListResponse, error) {
	filter := entity.NotificationFilter{
		UserID:   &userID,
		Page:     page,
		PageSize: pageSize,
	}

	notifications, total, err := u.notificationRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list notifications for %s: %+v", userID, err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification %s read: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *notificationUsecase) ListLogs(ctx context.Context, filter entity.NotificationFilter) (*dto.NotificationListResponse, error) {
	notifications, total, err := u.notificationRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list notification logs: %+v", err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         total,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}, nil
}

func (u *notificationUsecase) failAllDeliveries(db *gorm.DB, notification *entity.Notification, deliveries []entity.NotificationDelivery, reason string) {
	for i := range deliveries {
		deliveries[i].DeliveryStatus = entity.DeliveryStatusFailed
		deliveries[i].FailureReason = reason
		if err := u.notificationRepo.UpdateDelivery(db, &deliveries[i]); err != nil {
			u.log.Warnf("Failed to record delivery failure: %+v", err)
		}
	}

	notification.Status = entity.NotificationStatusFailed
	notification.FailureReason = reason
	if err := u.notificationRepo.Update(db, notification); err != nil {
		u.log.Warnf("Failed to record notification failure: %+v", err)
	}
	notification.Deliveries = deliveries
}
