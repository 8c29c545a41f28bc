package domain

import (
	"errors"
	"time"
)

const (
	StatusFresh    = "fresh"
	StatusExpiring = "expiring"
	StatusExpired  = "expired"
)

const (
	CandidateSourceText  = "text"
	CandidateSourceImage = "image"
)

var (
	MessageSuccessIngest       = "item candidates extracted successfully"
	MessageSuccessConfirmItems = "items confirmed successfully"
	MessageSuccessGetItems     = "items retrieved successfully"
	MessageSuccessGetExpiring  = "expiring items retrieved successfully"
	MessageSuccessUpdateItem   = "item updated successfully"
	MessageSuccessDeleteItem   = "item deleted successfully"

	MessageFailedIngest       = "failed to extract item candidates"
	MessageFailedConfirmItems = "failed to confirm items"
	MessageFailedGetItems     = "failed to retrieve items"
	MessageFailedGetExpiring  = "failed to retrieve expiring items"
	MessageFailedUpdateItem   = "failed to update item"
	MessageFailedDeleteItem   = "failed to delete item"

	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidDate       = errors.New("invalid date")
	ErrEmptyIngest       = errors.New("provide text or images")
)

type (
	ItemCandidate struct {
		Name            string   `json:"name"`
		Quantity        *float64 `json:"quantity,omitempty"`
		Unit            string   `json:"unit,omitempty"`
		ExpiryDate      *string  `json:"expiry_date,omitempty"`
		StorageLocation string   `json:"storage_location,omitempty"`
		Confidence      float64  `json:"confidence"`
		Source          string   `json:"source"`
	}

	IngestResponse struct {
		Candidates []ItemCandidate `json:"candidates"`
	}

	ConfirmItemRequest struct {
		Name            string   `json:"name" validate:"required"`
		Category        string   `json:"category" validate:"omitempty"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            string   `json:"unit" validate:"omitempty"`
		PurchaseDate    string   `json:"purchase_date" validate:"omitempty"`
		ExpiryDate      string   `json:"expiry_date" validate:"omitempty"`
		StorageLocation string   `json:"storage_location" validate:"omitempty"`
		Notes           string   `json:"notes" validate:"omitempty"`
	}

	ConfirmItemsRequest struct {
		FridgeID string               `json:"fridge_id" validate:"required,uuid"`
		Items    []ConfirmItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateItemRequest struct {
		Name            *string  `json:"name" validate:"omitempty"`
		Category        *string  `json:"category" validate:"omitempty"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            *string  `json:"unit" validate:"omitempty"`
		PurchaseDate    *string  `json:"purchase_date" validate:"omitempty"`
		ExpiryDate      *string  `json:"expiry_date" validate:"omitempty"`
		StorageLocation *string  `json:"storage_location" validate:"omitempty"`
		Status          *string  `json:"status" validate:"omitempty,oneof=fresh expiring expired"`
		Notes           *string  `json:"notes" validate:"omitempty"`
	}

	ItemResponse struct {
		ID              string     `json:"id"`
		FridgeID        string     `json:"fridge_id"`
		Name            string     `json:"name"`
		Category        string     `json:"category,omitempty"`
		Quantity        *float64   `json:"quantity,omitempty"`
		Unit            string     `json:"unit,omitempty"`
		PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
		ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
		StorageLocation string     `json:"storage_location,omitempty"`
		Status          string     `json:"status"`
		Notes           string     `json:"notes,omitempty"`
		ImageURL        string     `json:"image_url,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
	}
)
