package handlers

import (
	"fridgify/domain"
	"fridgify/internal/api/presenters"
	"fridgify/internal/utils"
	"fridgify/pkg/fridge"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		CreateFridge(c *fiber.Ctx) error
		GetMembers(c *fiber.Ctx) error
		CreateInvite(c *fiber.Ctx) error
		JoinFridge(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService      fridge.FridgeService
		validator          *validator.Validate
		inviteExpiresHours int
		inviteMaxUses      int
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate, inviteExpiresHours, inviteMaxUses int) FridgeHandler {
	return &fridgeHandler{
		fridgeService:      fridgeService,
		validator:          validator,
		inviteExpiresHours: inviteExpiresHours,
		inviteMaxUses:      inviteMaxUses,
	}
}

func (h *fridgeHandler) CreateFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFridge, err)
	}

	res, err := h.fridgeService.CreateFridge(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFridge)
}

func (h *fridgeHandler) GetMembers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")

	res, err := h.fridgeService.ListMembers(c.Context(), fridgeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetMembers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMembers)
}

func (h *fridgeHandler) CreateInvite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateInviteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvite, err)
	}

	if req.ExpiresHours == 0 {
		req.ExpiresHours = h.inviteExpiresHours
	}
	if req.MaxUses == 0 {
		req.MaxUses = h.inviteMaxUses
	}

	code, err := utils.GenerateInviteCode()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateInvite, err)
	}

	res, err := h.fridgeService.CreateInviteCode(c.Context(), *req, userID, code)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateInvite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateInvite)
}

func (h *fridgeHandler) JoinFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.JoinFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedJoinFridge, err)
	}

	res, err := h.fridgeService.JoinFridgeByInvite(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedJoinFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessJoinFridge)
}
