package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "user profile retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve user profile"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"omitempty"`
		Locale   string `json:"locale" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		Name   string `json:"name,omitempty"`
		Locale string `json:"locale,omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name,omitempty"`
		Locale    string    `json:"locale,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
