package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/loopi-routing/internal/config"
	"github.com/loopi-routing/internal/delivery/http/handler"
	"github.com/loopi-routing/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	routeHandler         *handler.RouteHandler
	landmarkHandler      *handler.LandmarkHandler
	savedLocationHandler *handler.SavedLocationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	landmarkHandler *handler.LandmarkHandler,
	savedLocationHandler *handler.SavedLocationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Loopi Routing",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // OSRM timeout + запас
		IdleTimeout:  60 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		Immutable:    true, // параметры пути сохраняются в хранилищах
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                  app,
		config:               cfg,
		logger:               logger,
		routeHandler:         routeHandler,
		landmarkHandler:      landmarkHandler,
		savedLocationHandler: savedLocationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Route planning
	routes := api.Group("/routes")
	routes.Post("/sequence", s.routeHandler.Sequence)
	routes.Post("/plan", s.routeHandler.Plan)
	routes.Post("/segments", s.routeHandler.PlanSegments)

	// Landmark gazetteer
	landmarks := api.Group("/landmarks")
	landmarks.Get("/", s.landmarkHandler.List)
	landmarks.Post("/clusters", s.landmarkHandler.DiscoverClusters)
	landmarks.Post("/extract", s.landmarkHandler.ExtractFromText)
	landmarks.Get("/:id", s.landmarkHandler.Get)

	// Saved locations
	saved := api.Group("/saved")
	saved.Get("/:owner", s.savedLocationHandler.List)
	saved.Put("/:owner", s.savedLocationHandler.Replace)
	saved.Post("/:owner", s.savedLocationHandler.Add)
	saved.Delete("/:owner/:id", s.savedLocationHandler.Remove)
}

// App - fiber приложение (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404, 405, паники) в общем формате ответа
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusNotFound:
				errCode = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				errCode = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				errCode = "PAYLOAD_TOO_LARGE"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": message,
			},
		})
	}
}
