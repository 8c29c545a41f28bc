package config

import (
	"fridgify/internal/api/handlers"
	"fridgify/internal/api/routes"
	"fridgify/internal/middleware"
	"fridgify/internal/utils"
	"fridgify/internal/utils/mailing"
	"fridgify/internal/utils/storage"
	"fridgify/pkg/fridge"
	"fridgify/pkg/item"
	"fridgify/pkg/jwt"
	"fridgify/pkg/llm"
	"fridgify/pkg/notification"
	"fridgify/pkg/recipe"
	"fridgify/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()
	llmClient := llm.NewLLMClient()

	expiringDays := utils.GetConfigInt("DEFAULT_EXPIRING_DAYS", 3)
	inviteExpiresHours := utils.GetConfigInt("INVITE_EXPIRES_HOURS", 168)
	inviteMaxUses := utils.GetConfigInt("INVITE_MAX_USES", 1)

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	itemRepository := item.NewItemRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	itemService := item.NewItemService(itemRepository, fridgeRepository, llmClient)
	recipeService := recipe.NewRecipeService(itemRepository, fridgeRepository, llmClient)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		itemRepository,
		fridgeRepository,
		userRepository,
		mailer,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator, inviteExpiresHours, inviteMaxUses)
	itemHandler := handlers.NewItemHandler(itemService, validator, s3, expiringDays)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, expiringDays)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FridgeHandler:       fridgeHandler,
		ItemHandler:         itemHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
