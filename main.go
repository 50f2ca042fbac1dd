package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"wellvest-go-be/ai"
	"wellvest-go-be/auth"
	"wellvest-go-be/config"
	"wellvest-go-be/database"
	"wellvest-go-be/handlers"
	"wellvest-go-be/localstore"
	"wellvest-go-be/remote"
	"wellvest-go-be/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration. \n", err)
	}

	zlog, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger. \n", err)
	}
	defer zlog.Sync()

	// Connect to Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	zlog.Info("connected to database")

	remoteSvc := remote.NewGormService(db)

	// Local durable storage
	local, err := localstore.Open(cfg.LocalDBPath)
	if err != nil {
		zlog.Fatal("failed to open local storage", zap.Error(err))
	}
	defer local.Close()

	// AI chat companion (optional)
	var companion *ai.Companion
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			zlog.Fatal("failed to init AI client", zap.Error(err))
		}
		companion = ai.NewCompanion(gemini, ai.WithLogger(zlog))
	} else {
		zlog.Warn("GEMINI_API_KEY not set, chat companion disabled")
	}

	sessions := handlers.NewSessions(func(userID string) *store.Store {
		st := store.New(remoteSvc,
			store.WithLocalStore(local.Namespace("wellvest:"+userID)),
			store.WithLogger(zlog.With(zap.String("user_id", userID))),
		)
		if err := st.LoadLocal(); err != nil {
			zlog.Warn("failed to restore local state", zap.String("user_id", userID), zap.Error(err))
		}
		st.Authenticate(userID)
		return st
	})

	// Initialize Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health Check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	verifier := auth.NewVerifier(cfg.JWTSecret)
	protected := api.Group("", verifier.Middleware())
	handlers.New(sessions, companion, zlog).Register(protected)

	// Start Server
	if err := app.Listen(cfg.Address()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return zcfg.Build()
}
