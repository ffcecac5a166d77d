package routes

import (
	"TrackFit-Backend/internal/api/handlers"
	"TrackFit-Backend/internal/middleware"
	"TrackFit-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Config struct {
	App            *fiber.App
	DB             *gorm.DB
	TargetHandler  handlers.TargetHandler
	FoodHandler    handlers.FoodHandler
	MealHandler    handlers.MealHandler
	WaterHandler   handlers.WaterHandler
	SummaryHandler handlers.SummaryHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Targets()
	c.Foods()
	c.Meals()
	c.Water()
	c.Summary()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/health", c.health)
}

func (c *Config) health(ctx *fiber.Ctx) error {
	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Context())
	}
	if err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "unreachable",
			"error":    err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"status":   "healthy",
		"database": "ok",
	})
}

func (c *Config) Targets() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	profile := c.App.Group("/api/v1/profile", auth)
	profile.Get("", c.TargetHandler.GetProfile)
	profile.Post("/questionnaire", c.TargetHandler.SubmitQuestionnaire)

	targets := c.App.Group("/api/v1/targets", auth)
	targets.Get("", c.TargetHandler.GetTargets)
	targets.Post("/preview", c.TargetHandler.PreviewTargets)
	targets.Post("/recalculate", c.TargetHandler.RecalculateTargets)
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/search", c.FoodHandler.SearchFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodByID)
	foods.Get("/:id/units", c.FoodHandler.GetMeasurementUnits)
	foods.Post("/:id/nutrition", c.FoodHandler.CalculateNutrition)
}

func (c *Config) Meals() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	meals := c.App.Group("/api/v1/meals", auth)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Post("", c.MealHandler.AddMeal)
	meals.Put("/:id", c.MealHandler.UpdateMeal)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)
	meals.Post("/:id/image", c.MealHandler.UploadMealImage)

	groups := c.App.Group("/api/v1/meal-groups", auth)
	groups.Patch("/:id", c.MealHandler.UpdateMealGroup)
}

func (c *Config) Water() {
	water := c.App.Group("/api/v1/water", c.Middleware.AuthMiddleware(c.JWTService))
	water.Get("", c.WaterHandler.GetWaterLog)
	water.Put("", c.WaterHandler.SetWaterLog)
	water.Post("/add", c.WaterHandler.AddWater)
	water.Delete("", c.WaterHandler.ClearWaterLog)
}

func (c *Config) Summary() {
	summary := c.App.Group("/api/v1/summary", c.Middleware.AuthMiddleware(c.JWTService))
	summary.Get("", c.SummaryHandler.GetDailySummary)
}
