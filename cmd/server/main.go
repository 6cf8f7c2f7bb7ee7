package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/casting-intake/internal/config"
	"github.com/fadilmartias/casting-intake/internal/domain/fiber/handler"
	"github.com/fadilmartias/casting-intake/internal/logger"
	"github.com/fadilmartias/casting-intake/internal/middleware"
	"github.com/fadilmartias/casting-intake/internal/repository"
	"github.com/fadilmartias/casting-intake/internal/service"
	"github.com/fadilmartias/casting-intake/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := logger.New(config.LoadLogConfig())
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := config.LoadDossierSeed()
	if err != nil {
		zlog.Fatal("Could not load dossier seed", zap.Error(err))
	}

	ai, err := newGenerativeService(ctx)
	if err != nil {
		zlog.Fatal("Could not initialise generative service", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appAllowedOrigins(appConfig),
		AllowCredentials: appConfig.BaseURL != "",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(120, 1*time.Minute))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	sessionConfig := config.LoadSessionConfig()
	sessions := repository.NewSessionRepository(seed)
	assistant := usecase.NewAssistantUsecase(ai, config.LoadGeminiConfig().Model, zlog.Named("assistant"))
	uc := usecase.NewIntakeUsecase(sessions, assistant, zlog.Named("intake"))
	handler.NewIntakeHandler(uc, sessionConfig.CookieName).RegisterRoutes(app)

	go uc.RunSweeper(ctx, sessionConfig.TTL)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zlog.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	go func() {
		<-ctx.Done()
		zlog.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("Shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("Server running", zap.String("port", appConfig.Port), zap.String("env", appConfig.Env))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}

// newGenerativeService picks the provider named by AI_PROVIDER.
func newGenerativeService(ctx context.Context) (service.GenerativeServiceInterface, error) {
	switch provider := config.LoadGeminiConfig().Provider; provider {
	case config.ProviderGemini, "":
		return service.NewGeminiService(ctx)
	case config.ProviderOpenRouter:
		return service.NewOpenRouterService()
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", provider)
	}
}

func appAllowedOrigins(appConfig *config.AppConfig) string {
	if appConfig.BaseURL != "" {
		return appConfig.BaseURL
	}
	return "*"
}
