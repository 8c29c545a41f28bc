package fridge

import (
	"context"

	"fridgify/domain"
	"fridgify/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		CreateFridgeWithOwner(ctx context.Context, fridge *entities.Fridge) error
		GetFridgeByID(ctx context.Context, id string) (*entities.Fridge, error)
		ListMembers(ctx context.Context, fridgeID string) ([]*entities.FridgeMember, error)
		AddMember(ctx context.Context, member *entities.FridgeMember) error
		IsMember(ctx context.Context, fridgeID string, userID string) (bool, error)

		CreateInvite(ctx context.Context, invite *entities.InviteCode) error
		GetInviteByCode(ctx context.Context, code string) (*entities.InviteCode, error)
		IncrementInviteUsed(ctx context.Context, inviteID string) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

// CreateFridgeWithOwner creates the fridge and its owner membership in one
// transaction: either both rows exist afterwards or neither does.
func (r *fridgeRepository) CreateFridgeWithOwner(ctx context.Context, fridge *entities.Fridge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fridge).Error; err != nil {
			return err
		}
		member := &entities.FridgeMember{
			ID:       uuid.New(),
			FridgeID: fridge.ID,
			UserID:   fridge.OwnerUserID,
			Role:     domain.RoleOwner,
		}
		return tx.Create(member).Error
	})
}

func (r *fridgeRepository) GetFridgeByID(ctx context.Context, id string) (*entities.Fridge, error) {
	var fridge entities.Fridge
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fridge).Error; err != nil {
		return nil, err
	}
	return &fridge, nil
}

func (r *fridgeRepository) ListMembers(ctx context.Context, fridgeID string) ([]*entities.FridgeMember, error) {
	var members []*entities.FridgeMember
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *fridgeRepository) AddMember(ctx context.Context, member *entities.FridgeMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *fridgeRepository) IsMember(ctx context.Context, fridgeID string, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FridgeMember{}).
		Where("fridge_id = ? AND user_id = ?", fridgeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *fridgeRepository) CreateInvite(ctx context.Context, invite *entities.InviteCode) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *fridgeRepository) GetInviteByCode(ctx context.Context, code string) (*entities.InviteCode, error) {
	var invite entities.InviteCode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *fridgeRepository) IncrementInviteUsed(ctx context.Context, inviteID string) error {
	return r.db.WithContext(ctx).Model(&entities.InviteCode{}).
		Where("id = ?", inviteID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}
