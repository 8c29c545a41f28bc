package notification

import (
	"context"

	"fridgify/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		NotificationExists(ctx context.Context, userID uuid.UUID, itemID *uuid.UUID, notifType string) (bool, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		GetNotificationsByUser(ctx context.Context, userID string) ([]*entities.Notification, error)
		UpdateNotification(ctx context.Context, notification *entities.Notification) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) NotificationExists(ctx context.Context, userID uuid.UUID, itemID *uuid.UUID, notifType string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND type = ?", userID, notifType)
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	} else {
		query = query.Where("item_id IS NULL")
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetNotificationsByUser(ctx context.Context, userID string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}
