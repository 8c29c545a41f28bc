package migration

import (
	"fmt"
	"log"

	"fridgify/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Fridge{}); err != nil {
		log.Fatalf("Error migrating fridge database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeMember{}); err != nil {
		log.Fatalf("Error migrating fridge member database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InviteCode{}); err != nil {
		log.Fatalf("Error migrating invite code database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeItem{}); err != nil {
		log.Fatalf("Error migrating fridge item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
