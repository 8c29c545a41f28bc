package fridge

import (
	"context"
	"errors"
	"time"

	"fridgify/domain"
	"fridgify/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateFridge(ctx context.Context, req domain.CreateFridgeRequest, userID string) (domain.FridgeResponse, error)
		ListMembers(ctx context.Context, fridgeID string, userID string) ([]domain.MemberResponse, error)
		CreateInviteCode(ctx context.Context, req domain.CreateInviteRequest, userID string, code string) (domain.InviteResponse, error)
		JoinFridgeByInvite(ctx context.Context, req domain.JoinFridgeRequest, userID string) (domain.JoinFridgeResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) CreateFridge(ctx context.Context, req domain.CreateFridgeRequest, userID string) (domain.FridgeResponse, error) {
	ownerUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	fridge := &entities.Fridge{
		ID:          uuid.New(),
		Name:        req.Name,
		OwnerUserID: ownerUUID,
	}

	if err := s.fridgeRepository.CreateFridgeWithOwner(ctx, fridge); err != nil {
		return domain.FridgeResponse{}, err
	}

	return domain.FridgeResponse{
		ID:          fridge.ID.String(),
		Name:        fridge.Name,
		OwnerUserID: fridge.OwnerUserID.String(),
		CreatedAt:   fridge.CreatedAt,
	}, nil
}

func (s *fridgeService) ListMembers(ctx context.Context, fridgeID string, userID string) ([]domain.MemberResponse, error) {
	isMember, err := s.fridgeRepository.IsMember(ctx, fridgeID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, domain.ErrNotFridgeMember
	}

	if _, err := s.fridgeRepository.GetFridgeByID(ctx, fridgeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeNotFound
		}
		return nil, err
	}

	members, err := s.fridgeRepository.ListMembers(ctx, fridgeID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MemberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, domain.MemberResponse{
			UserID:   member.UserID.String(),
			Role:     member.Role,
			JoinedAt: member.CreatedAt,
		})
	}
	return response, nil
}

func (s *fridgeService) CreateInviteCode(ctx context.Context, req domain.CreateInviteRequest, userID string, code string) (domain.InviteResponse, error) {
	isMember, err := s.fridgeRepository.IsMember(ctx, req.FridgeID, userID)
	if err != nil {
		return domain.InviteResponse{}, err
	}
	if !isMember {
		return domain.InviteResponse{}, domain.ErrNotFridgeMember
	}

	fridgeUUID, err := uuid.Parse(req.FridgeID)
	if err != nil {
		return domain.InviteResponse{}, domain.ErrParseUUID
	}
	creatorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InviteResponse{}, domain.ErrParseUUID
	}

	invite := &entities.InviteCode{
		ID:        uuid.New(),
		FridgeID:  fridgeUUID,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(time.Duration(req.ExpiresHours) * time.Hour),
		CreatedBy: creatorUUID,
		UsedCount: 0,
		MaxUses:   req.MaxUses,
	}

	if err := s.fridgeRepository.CreateInvite(ctx, invite); err != nil {
		return domain.InviteResponse{}, err
	}

	return domain.InviteResponse{
		InviteCode: invite.Code,
		ExpiresAt:  invite.ExpiresAt,
	}, nil
}

func (s *fridgeService) JoinFridgeByInvite(ctx context.Context, req domain.JoinFridgeRequest, userID string) (domain.JoinFridgeResponse, error) {
	invite, err := s.fridgeRepository.GetInviteByCode(ctx, req.InviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JoinFridgeResponse{}, domain.ErrInviteNotFound
		}
		return domain.JoinFridgeResponse{}, err
	}

	// Expiry is checked before the usage cap; both are terminal rejections.
	now := time.Now().UTC()
	if !invite.ExpiresAt.After(now) {
		return domain.JoinFridgeResponse{}, domain.ErrInviteExpired
	}
	if invite.UsedCount >= invite.MaxUses {
		return domain.JoinFridgeResponse{}, domain.ErrInviteExhausted
	}

	isMember, err := s.fridgeRepository.IsMember(ctx, invite.FridgeID.String(), userID)
	if err != nil {
		return domain.JoinFridgeResponse{}, err
	}
	if isMember {
		return domain.JoinFridgeResponse{}, domain.ErrAlreadyMember
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.JoinFridgeResponse{}, domain.ErrParseUUID
	}

	member := &entities.FridgeMember{
		ID:       uuid.New(),
		FridgeID: invite.FridgeID,
		UserID:   userUUID,
		Role:     domain.RoleMember,
	}
	if err := s.fridgeRepository.AddMember(ctx, member); err != nil {
		return domain.JoinFridgeResponse{}, err
	}

	if err := s.fridgeRepository.IncrementInviteUsed(ctx, invite.ID.String()); err != nil {
		return domain.JoinFridgeResponse{}, err
	}

	return domain.JoinFridgeResponse{
		FridgeID: invite.FridgeID.String(),
		Role:     domain.RoleMember,
	}, nil
}
