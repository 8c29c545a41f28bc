package item

import (
	"context"
	"time"

	"fridgify/entities"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		CreateItems(ctx context.Context, items []*entities.FridgeItem) error
		GetItemByID(ctx context.Context, id string) (*entities.FridgeItem, error)
		UpdateItem(ctx context.Context, item *entities.FridgeItem) error
		DeleteItem(ctx context.Context, id string) (int64, error)
		GetItems(ctx context.Context, fridgeID string) ([]*entities.FridgeItem, error)
		GetExpiringItems(ctx context.Context, fridgeID string, cutoff time.Time) ([]*entities.FridgeItem, error)
		GetExpiringItemsAll(ctx context.Context, cutoff time.Time) ([]*entities.FridgeItem, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) CreateItems(ctx context.Context, items []*entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItem reports how many rows were removed so the caller can surface a
// delete that lost the race as not-found.
func (r *itemRepository) DeleteItem(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FridgeItem{})
	return result.RowsAffected, result.Error
}

func (r *itemRepository) GetItems(ctx context.Context, fridgeID string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetExpiringItems(ctx context.Context, fridgeID string, cutoff time.Time) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", fridgeID, cutoff).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetExpiringItemsAll(ctx context.Context, cutoff time.Time) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", cutoff).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
