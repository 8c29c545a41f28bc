package presenters

import (
	"errors"

	"fridgify/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	response := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}
	return c.Status(code).JSON(response)
}

var (
	notFoundErrors = []error{
		domain.ErrFridgeNotFound,
		domain.ErrInviteNotFound,
		domain.ErrItemNotFound,
		domain.ErrNotificationNotFound,
		domain.ErrUserNotFound,
	}
	conflictErrors = []error{
		domain.ErrEmailAlreadyRegistered,
		domain.ErrAlreadyMember,
	}
	forbiddenErrors = []error{
		domain.ErrNotFridgeMember,
		domain.ErrNotNotificationOwner,
	}
	badRequestErrors = []error{
		domain.ErrParseUUID,
		domain.ErrInvalidExpiryDate,
		domain.ErrInvalidDate,
		domain.ErrEmptyIngest,
		domain.ErrInviteExpired,
		domain.ErrInviteExhausted,
	}
)

// StatusFromError maps a domain sentinel to its HTTP status code. Anything
// unrecognized came from infrastructure, not the request, and reports as 500.
func StatusFromError(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return fiber.StatusNotFound
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return fiber.StatusConflict
		}
	}
	for _, target := range forbiddenErrors {
		if errors.Is(err, target) {
			return fiber.StatusForbidden
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}
