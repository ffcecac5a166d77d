package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/internal/api/handlers"
	"TrackFit-Backend/internal/api/presenters"
	"TrackFit-Backend/internal/api/routes"
	"TrackFit-Backend/internal/middleware"
	"TrackFit-Backend/internal/utils"
	"TrackFit-Backend/internal/utils/mailing"
	"TrackFit-Backend/internal/utils/storage"
	"TrackFit-Backend/pkg/food"
	"TrackFit-Backend/pkg/jwt"
	"TrackFit-Backend/pkg/meal"
	"TrackFit-Backend/pkg/summary"
	"TrackFit-Backend/pkg/target"
	"TrackFit-Backend/pkg/water"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

var (
	prometheusOnce sync.Once
	prometheus     *fiberprometheus.FiberPrometheus
)

// metrics returns the process-wide collector set; registering it twice
// would panic.
func metrics() *fiberprometheus.FiberPrometheus {
	prometheusOnce.Do(func() {
		prometheus = fiberprometheus.New("trackfit")
	})
	return prometheus
}

// AppDependencies lets tests swap the external services. Nil Storage and
// JWTService fall back to the configured ones; a nil Mailer disables mail.
type AppDependencies struct {
	Storage    storage.AwsS3
	Mailer     mailing.Mailer
	JWTService jwt.JWTService
	AccessLog  bool
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	return NewAppWithDependencies(db, AppDependencies{
		Mailer:    mailing.NewMailer(),
		AccessLog: true,
	})
}

func NewAppWithDependencies(db *gorm.DB, deps AppDependencies) (*fiber.App, error) {
	if deps.Storage == nil {
		deps.Storage = storage.NewAwsS3()
	}
	if deps.JWTService == nil {
		deps.JWTService = jwt.NewJWTService()
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "TrackFit",
		ErrorHandler: errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New())

	// setting up logging and limiter
	if deps.AccessLog {
		logFile := utils.GetConfig("LOG_FILE")
		if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
			log.Errorf("error creating logs directory: %v", err)
			return nil, err
		}
		file, err := os.OpenFile(
			logFile,
			os.O_RDWR|os.O_CREATE|os.O_APPEND,
			0666,
		)
		if err != nil {
			log.Errorf("error opening file: %v", err)
			return nil, err
		}
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "UTC",
			Output:     file,
		}))

		rateLimit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
		if err != nil || rateLimit < 1 {
			rateLimit = 20
		}
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	app.Use(compress.New())

	prom := metrics()
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Repository
	targetRepository := target.NewTargetRepository(db)
	foodRepository := food.NewFoodRepository(db)
	mealRepository := meal.NewMealRepository(db)
	waterRepository := water.NewWaterRepository(db)

	// Service
	targetService := target.NewTargetService(targetRepository, deps.Mailer)
	foodService := food.NewFoodService(foodRepository)
	mealService := meal.NewMealService(mealRepository, foodRepository, deps.Storage)
	waterService := water.NewWaterService(waterRepository)
	summaryService := summary.NewSummaryService(mealRepository, targetRepository, waterRepository)

	// Handler
	targetHandler := handlers.NewTargetHandler(targetService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	waterHandler := handlers.NewWaterHandler(waterService, validator)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		DB:             db,
		TargetHandler:  targetHandler,
		FoodHandler:    foodHandler,
		MealHandler:    mealHandler,
		WaterHandler:   waterHandler,
		SummaryHandler: summaryHandler,
		Middleware:     middlewares,
		JWTService:     deps.JWTService,
	}
	routesConfig.Setup()

	app.Use(func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRouteNotFound, fiber.ErrNotFound)
	})
	return app, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		log.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, err)
}
