package handlers

import (
	"fmt"
	"strconv"

	"fridgify/domain"
	"fridgify/internal/api/presenters"
	"fridgify/internal/utils/storage"
	"fridgify/pkg/item"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	ItemHandler interface {
		IngestItems(c *fiber.Ctx) error
		IngestImage(c *fiber.Ctx) error
		ConfirmItems(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService  item.ItemService
		validator    *validator.Validate
		s3           storage.AwsS3
		expiringDays int
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate, s3 storage.AwsS3, expiringDays int) ItemHandler {
	return &itemHandler{
		itemService:  itemService,
		validator:    validator,
		s3:           s3,
		expiringDays: expiringDays,
	}
}

// IngestItems accepts free text and/or photos and returns item candidates.
// Photos are stored before their filenames go to extraction.
func (h *itemHandler) IngestItems(c *fiber.Ctx) error {
	text := c.FormValue("text")

	var imageNames []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			if _, err := h.s3.UploadFile(
				fmt.Sprintf("ingest-%s", uuid.New().String()),
				file,
				"ingest",
				storage.AllowImage...,
			); err != nil {
				return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngest, err)
			}
			imageNames = append(imageNames, file.Filename)
		}
	}

	if text == "" && len(imageNames) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngest, domain.ErrEmptyIngest)
	}

	candidates := h.itemService.IngestCandidates(c.Context(), text, imageNames)

	return presenters.SuccessResponse(c, domain.IngestResponse{Candidates: candidates}, fiber.StatusOK, domain.MessageSuccessIngest)
}

// IngestImage is the single-photo variant of IngestItems.
func (h *itemHandler) IngestImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngest, domain.ErrEmptyIngest)
	}

	if _, err := h.s3.UploadFile(
		fmt.Sprintf("ingest-%s", uuid.New().String()),
		file,
		"ingest",
		storage.AllowImage...,
	); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngest, err)
	}

	candidates := h.itemService.IngestCandidates(c.Context(), "", []string{file.Filename})

	return presenters.SuccessResponse(c, domain.IngestResponse{Candidates: candidates}, fiber.StatusOK, domain.MessageSuccessIngest)
}

func (h *itemHandler) ConfirmItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ConfirmItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmItems, err)
	}

	res, err := h.itemService.ConfirmItems(c.Context(), *req, userID, h.expiringDays)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedConfirmItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConfirmItems)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Query("fridge_id")
	if fridgeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, domain.ErrParseUUID)
	}

	res, err := h.itemService.GetItems(c.Context(), fridgeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) GetExpiringItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Query("fridge_id")
	if fridgeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiring, domain.ErrParseUUID)
	}

	days, err := strconv.Atoi(c.Query("days", strconv.Itoa(h.expiringDays)))
	if err != nil || days < 0 {
		days = h.expiringDays
	}

	res, err := h.itemService.GetExpiringItems(c.Context(), fridgeID, userID, days)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetExpiring, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpiring)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.itemService.UpdateItem(c.Context(), itemID, *req, userID, h.expiringDays)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.itemService.DeleteItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}
