package entities

import (
	"time"

	"github.com/google/uuid"
)

type FridgeItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeID        uuid.UUID  `gorm:"index" json:"fridge_id"`
	Name            string     `gorm:"not null" json:"name"`
	Category        string     `json:"category,omitempty"`
	Quantity        *float64   `json:"quantity,omitempty"`
	Unit            string     `json:"unit,omitempty"`
	PurchaseDate    *time.Time `gorm:"type:date" json:"purchase_date,omitempty"`
	ExpiryDate      *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	StorageLocation string     `json:"storage_location,omitempty"`
	Status          string     `gorm:"type:varchar(16)" json:"status"` // "fresh", "expiring", "expired"
	Notes           string     `json:"notes,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`

	Fridge *Fridge `gorm:"foreignKey:FridgeID"`
	Timestamp
}
