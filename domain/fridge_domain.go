package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFridge = "fridge created successfully"
	MessageSuccessGetMembers   = "fridge members retrieved successfully"
	MessageSuccessCreateInvite = "invite code created successfully"
	MessageSuccessJoinFridge   = "joined fridge successfully"

	MessageFailedCreateFridge = "failed to create fridge"
	MessageFailedGetMembers   = "failed to retrieve fridge members"
	MessageFailedCreateInvite = "failed to create invite code"
	MessageFailedJoinFridge   = "failed to join fridge"

	ErrFridgeNotFound  = errors.New("fridge not found")
	ErrInviteNotFound  = errors.New("invite code not found")
	ErrInviteExpired   = errors.New("invite code expired")
	ErrInviteExhausted = errors.New("invite code already used")
	ErrAlreadyMember   = errors.New("already a member")
)

type (
	CreateFridgeRequest struct {
		Name string `json:"name" validate:"required"`
	}

	FridgeResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		OwnerUserID string    `json:"owner_user_id"`
		CreatedAt   time.Time `json:"created_at"`
	}

	MemberResponse struct {
		UserID   string    `json:"user_id"`
		Role     string    `json:"role"`
		JoinedAt time.Time `json:"joined_at"`
	}

	CreateInviteRequest struct {
		FridgeID     string `json:"fridge_id" validate:"required,uuid"`
		ExpiresHours int    `json:"expires_hours" validate:"omitempty,min=1"`
		MaxUses      int    `json:"max_uses" validate:"omitempty,min=1"`
	}

	InviteResponse struct {
		InviteCode string    `json:"invite_code"`
		ExpiresAt  time.Time `json:"expires_at"`
	}

	JoinFridgeRequest struct {
		InviteCode string `json:"invite_code" validate:"required"`
	}

	JoinFridgeResponse struct {
		FridgeID string `json:"fridge_id"`
		Role     string `json:"role"`
	}
)
