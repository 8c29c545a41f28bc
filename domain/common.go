package domain

import (
	"errors"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrTokenNotFound   = errors.New("token not found")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenExpired    = errors.New("token expired")
	ErrNotFridgeMember = errors.New("not a fridge member")
)
