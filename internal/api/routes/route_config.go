package routes

import (
	"fridgify/internal/api/handlers"
	"fridgify/internal/middleware"
	"fridgify/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FridgeHandler       handlers.FridgeHandler
	ItemHandler         handlers.ItemHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Fridges()
	c.Items()
	c.Recipes()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Fridges() {
	fridges := c.App.Group("/api/v1/fridges", c.Middleware.AuthMiddleware(c.JWTService))

	fridges.Post("", c.FridgeHandler.CreateFridge)
	fridges.Get("/:id/members", c.FridgeHandler.GetMembers)
	fridges.Post("/invite", c.FridgeHandler.CreateInvite)
	fridges.Post("/join", c.FridgeHandler.JoinFridge)
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))

	items.Post("/ingest", c.ItemHandler.IngestItems)
	items.Post("/image", c.ItemHandler.IngestImage)
	items.Post("/confirm", c.ItemHandler.ConfirmItems)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/expiring", c.ItemHandler.GetExpiringItems)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("/suggest", c.RecipeHandler.SuggestRecipes)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications")

	notifications.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.NotificationHandler.GetNotifications)
	notifications.Post("/:id/read", c.Middleware.AuthMiddleware(c.JWTService), c.NotificationHandler.MarkAsRead)

	// trusted scheduler trigger, gated by the cron secret instead of a user token
	notifications.Post("/cron/expiring", c.Middleware.CronMiddleware(), c.NotificationHandler.GenerateSweep)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
