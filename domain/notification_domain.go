package domain

import (
	"errors"
	"time"
)

const (
	NotificationTypeExpiring = "expiring"
	NotificationTypeExpired  = "expired"

	NotificationStatusUnread = "unread"
	NotificationStatusRead   = "read"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkAsRead       = "notification marked as read"
	MessageSuccessSweep            = "expiry notifications generated"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkAsRead       = "failed to mark notification as read"
	MessageFailedSweep            = "failed to generate expiry notifications"

	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("notification belongs to another user")
)

type (
	NotificationResponse struct {
		ID        string    `json:"id"`
		FridgeID  string    `json:"fridge_id"`
		ItemID    *string   `json:"item_id,omitempty"`
		Type      string    `json:"type"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}

	SweepResponse struct {
		Created int `json:"created"`
	}
)
