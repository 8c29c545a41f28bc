package handlers

import (
	"strconv"

	"fridgify/domain"
	"fridgify/internal/api/presenters"
	"fridgify/pkg/notification"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		GenerateSweep(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		expiringDays        int
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, expiringDays int) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		expiringDays:        expiringDays,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.GetNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.MarkAsRead(c.Context(), notificationID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedMarkAsRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsRead)
}

func (h *notificationHandler) GenerateSweep(c *fiber.Ctx) error {
	days := h.expiringDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSweep, domain.ErrInvalidDate)
		}
		days = parsed
	}

	created, err := h.notificationService.GenerateExpiryNotifications(c.Context(), days)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedSweep, err)
	}

	return presenters.SuccessResponse(c, domain.SweepResponse{Created: created}, fiber.StatusOK, domain.MessageSuccessSweep)
}
