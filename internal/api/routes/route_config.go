package routes

import (
	"foodgram/internal/api/handlers"
	"foodgram/internal/middleware"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	TagHandler          handlers.TagHandler
	IngredientHandler   handlers.IngredientHandler
	RecipeHandler       handlers.RecipeHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	c.Auth()
	c.User()
	c.Catalog()
	c.Recipe()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", middleware.MetricsHandler())
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth/token")
	{
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	required := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	// static paths before /:id
	{
		user.Post("", c.UserHandler.Register)
		user.Get("", optional, c.UserHandler.GetUsers)
		user.Get("/me", required, c.UserHandler.Me)
		user.Post("/set_password", required, c.UserHandler.SetPassword)
		user.Get("/subscriptions", required, c.SubscriptionHandler.GetSubscriptions)
		user.Get("/:id", optional, c.UserHandler.GetUser)
		user.Post("/:id/subscribe", required, c.SubscriptionHandler.Subscribe)
		user.Delete("/:id/subscribe", required, c.SubscriptionHandler.Unsubscribe)
	}
}

func (c *Config) Catalog() {
	required := c.Middleware.AuthMiddleware(c.JWTService)

	tags := c.App.Group("/api/tags")
	tags.Get("", c.TagHandler.GetTags)
	tags.Get("/:id", c.TagHandler.GetTag)
	tags.Post("", required, c.TagHandler.CreateTag)

	ingredients := c.App.Group("/api/ingredients")
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
	ingredients.Post("", required, c.IngredientHandler.CreateIngredient)
}

func (c *Config) Recipe() {
	recipes := c.App.Group("/api/recipes")
	required := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes.Get("/download_shopping_cart", required, c.RecipeHandler.DownloadShoppingCart)

	// Basic CRUD operations
	recipes.Get("", optional, c.RecipeHandler.GetRecipes)
	recipes.Post("", required, c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", optional, c.RecipeHandler.GetRecipe)
	recipes.Patch("/:id", required, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", required, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", required, c.RecipeHandler.UploadRecipeImage)

	// Per-user toggles
	recipes.Post("/:id/favorite", required, c.RecipeHandler.AddFavorite)
	recipes.Delete("/:id/favorite", required, c.RecipeHandler.RemoveFavorite)
	recipes.Post("/:id/shopping_cart", required, c.RecipeHandler.AddToShoppingCart)
	recipes.Delete("/:id/shopping_cart", required, c.RecipeHandler.RemoveFromShoppingCart)
}
