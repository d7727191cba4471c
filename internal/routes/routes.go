package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lactohealth/lacto-auth/internal/config"
	"github.com/lactohealth/lacto-auth/internal/middleware"
	"github.com/lactohealth/lacto-auth/internal/users"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *mongo.Database
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// The in-memory store is a dev/test convenience only.
	if d.DB == nil && !d.Cfg.IsDev() {
		return fmt.Errorf("mongo is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.CORSOrigin,
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLog(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Liveness and readiness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": d.Cfg.AppName + " is running",
		})
	})
	RegisterHealthRoutes(app, d)

	// Store, service and handler
	var repo users.Repository
	if d.DB != nil {
		repo = users.NewMongoRepository(d.DB)
	} else {
		repo = users.NewMemoryRepository()
	}
	svc := users.NewService(repo, d.Cfg.BcryptCost)
	handler := users.NewHandler(svc, d.Logger)

	RegisterAuthRoutes(app, handler)

	return nil
}
