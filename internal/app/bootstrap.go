package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"connectus/internal/config"
	"connectus/internal/database/seeder"
	"connectus/internal/delivery/http/middleware"
	"connectus/internal/delivery/http/routes"
	v1 "connectus/internal/delivery/http/routes/v1"
	"connectus/internal/repository"
	"connectus/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/static"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	container *Container
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// releases every connection the container opened.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	container, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if container.Config.App.SeedDemo {
		users := repository.NewPostgresUserRepository(container.DB)
		jobs := repository.NewPostgresJobRepository(container.DB)
		if err := seeder.Seed(ctx, users, jobs, container.Logger); err != nil {
			_ = container.Close()
			return nil, nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	go container.Hub.Run()

	app := New(container)
	return app, container.Close, nil
}

func New(container *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:     container.Config.App.AppName,
		BodyLimit:   10 * 1024 * 1024,
		ReadTimeout: 30 * time.Second,
	})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	return &App{Fiber: f, container: container}
}

func registerGlobalMiddleware(f *fiber.App, container *Container) {
	f.Use(cors.New())
	f.Use(middleware.NewAccessLogMiddleware(container.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(container.Logger).Middleware())
}

func registerRoutes(f *fiber.App, container *Container) {
	f.Use("/uploads/resumes", static.New(container.Resumes.Dir()))

	deps := v1.Deps{
		Config:    container.Config,
		DB:        container.DB,
		JWT:       container.JWT,
		Verifier:  container.Verifier,
		Responder: container.Responder,
		Extractor: container.Extractor,
		Resumes:   container.Resumes,
		Cache:     container.Cache,
		Notifier:  ws.NewNotifier(container.Hub),
		Logger:    container.Logger,
	}

	events := ws.NewHandler(container.Hub, container.JWT, container.Logger)
	routes.NewRegistry(deps, events).Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
