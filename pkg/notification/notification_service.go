package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fridgify/domain"
	"fridgify/entities"
	"fridgify/internal/utils/mailing"
	"fridgify/pkg/fridge"
	"fridgify/pkg/item"
	"fridgify/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GenerateExpiryNotifications(ctx context.Context, days int) (int, error)
		GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error)
		MarkAsRead(ctx context.Context, notificationID string, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		itemRepository         item.ItemRepository
		fridgeRepository       fridge.FridgeRepository
		userRepository         user.UserRepository
		mailer                 mailing.Mailer
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	itemRepository item.ItemRepository,
	fridgeRepository fridge.FridgeRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		itemRepository:         itemRepository,
		fridgeRepository:       fridgeRepository,
		userRepository:         userRepository,
		mailer:                 mailer,
	}
}

// GenerateExpiryNotifications sweeps every fridge for items expiring within
// the window, refreshes stale statuses, and creates one notification per
// (member, item, type). Returns the number of notifications created, not the
// number of items touched. Meant for a trusted periodic trigger; concurrent
// sweeps are not safe against each other.
func (s *notificationService) GenerateExpiryNotifications(ctx context.Context, days int) (int, error) {
	today := time.Now().UTC()
	cutoff := today.Truncate(24 * time.Hour).AddDate(0, 0, days)

	expiringItems, err := s.itemRepository.GetExpiringItemsAll(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, expiring := range expiringItems {
		status := item.DetermineStatus(expiring.ExpiryDate, today, days)
		if status != expiring.Status {
			expiring.Status = status
			if err := s.itemRepository.UpdateItem(ctx, expiring); err != nil {
				return created, err
			}
		}

		members, err := s.fridgeRepository.ListMembers(ctx, expiring.FridgeID.String())
		if err != nil {
			return created, err
		}

		notifType := domain.NotificationTypeExpiring
		if status == domain.StatusExpired {
			notifType = domain.NotificationTypeExpired
		}

		for _, member := range members {
			exists, err := s.notificationRepository.NotificationExists(ctx, member.UserID, &expiring.ID, notifType)
			if err != nil {
				return created, err
			}
			if exists {
				continue
			}

			itemID := expiring.ID
			notification := &entities.Notification{
				ID:       uuid.New(),
				UserID:   member.UserID,
				FridgeID: expiring.FridgeID,
				ItemID:   &itemID,
				Type:     notifType,
				Status:   domain.NotificationStatusUnread,
			}
			if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
				return created, err
			}
			created++

			s.sendExpiryMail(ctx, member.UserID, expiring, notifType)
		}
	}

	return created, nil
}

// sendExpiryMail is best effort: a mail failure never fails the sweep.
func (s *notificationService) sendExpiryMail(ctx context.Context, userID uuid.UUID, expiring *entities.FridgeItem, notifType string) {
	if s.mailer == nil {
		return
	}

	recipient, err := s.userRepository.GetUserByID(ctx, userID.String())
	if err != nil {
		log.Printf("expiry mail: failed to load user %s: %v", userID, err)
		return
	}

	subject := fmt.Sprintf("%s is expiring soon", expiring.Name)
	body := fmt.Sprintf("<p>Heads up: <b>%s</b> in your fridge is expiring soon.</p>", expiring.Name)
	if notifType == domain.NotificationTypeExpired {
		subject = fmt.Sprintf("%s has expired", expiring.Name)
		body = fmt.Sprintf("<p><b>%s</b> in your fridge has expired.</p>", expiring.Name)
	}

	if err := s.mailer.Send(recipient.Email, subject, body); err != nil {
		log.Printf("expiry mail: failed to send to %s: %v", recipient.Email, err)
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		var itemID *string
		if notification.ItemID != nil {
			value := notification.ItemID.String()
			itemID = &value
		}
		response = append(response, domain.NotificationResponse{
			ID:        notification.ID.String(),
			FridgeID:  notification.FridgeID.String(),
			ItemID:    itemID,
			Type:      notification.Type,
			Status:    notification.Status,
			CreatedAt: notification.CreatedAt,
		})
	}
	return response, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, notificationID string, userID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrNotNotificationOwner
	}

	notification.Status = domain.NotificationStatusRead
	return s.notificationRepository.UpdateNotification(ctx, notification)
}
