package entities

import (
	"time"

	"github.com/google/uuid"
)

type Fridge struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	OwnerUserID uuid.UUID `json:"owner_user_id"`

	Owner   *User           `gorm:"foreignKey:OwnerUserID"`
	Members []*FridgeMember `gorm:"foreignKey:FridgeID"`
	Timestamp
}

type FridgeMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeID uuid.UUID `gorm:"uniqueIndex:idx_fridge_user" json:"fridge_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_fridge_user" json:"user_id"`
	Role     string    `gorm:"type:varchar(32);default:member" json:"role"` // "owner", "member"

	Fridge *Fridge `gorm:"foreignKey:FridgeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

type InviteCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeID  uuid.UUID `json:"fridge_id"`
	Code      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedBy uuid.UUID `json:"created_by"`
	UsedCount int       `gorm:"default:0" json:"used_count"`
	MaxUses   int       `gorm:"default:1" json:"max_uses"`

	Fridge *Fridge `gorm:"foreignKey:FridgeID"`
	Timestamp
}
