package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID  `gorm:"index;uniqueIndex:idx_user_item_type" json:"user_id"`
	FridgeID uuid.UUID  `gorm:"index" json:"fridge_id"`
	ItemID   *uuid.UUID `gorm:"uniqueIndex:idx_user_item_type" json:"item_id,omitempty"`
	Type     string     `gorm:"type:varchar(32);uniqueIndex:idx_user_item_type" json:"type"` // "expiring", "expired"
	Status   string     `gorm:"type:varchar(16);default:unread" json:"status"`               // "unread", "read"

	User   *User       `gorm:"foreignKey:UserID"`
	Fridge *Fridge     `gorm:"foreignKey:FridgeID"`
	Item   *FridgeItem `gorm:"foreignKey:ItemID"`
	Timestamp
}
