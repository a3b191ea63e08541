package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetinglog-app/meetinglog/pkg/validator"

	"github.com/meetinglog-app/meetinglog/internal/adapter/handler"
	"github.com/meetinglog-app/meetinglog/internal/adapter/repository"
	"github.com/meetinglog-app/meetinglog/internal/infrastructure/cache"
	"github.com/meetinglog-app/meetinglog/internal/infrastructure/database"
	"github.com/meetinglog-app/meetinglog/internal/usecase/actionitem"
	"github.com/meetinglog-app/meetinglog/internal/usecase/meeting"
	"github.com/meetinglog-app/meetinglog/internal/usecase/resolver"
	"github.com/meetinglog-app/meetinglog/internal/usecase/search"
	"github.com/meetinglog-app/meetinglog/internal/usecase/tag"
	"github.com/meetinglog-app/meetinglog/internal/usecase/template"
	pkgai "github.com/meetinglog-app/meetinglog/pkg/ai"
	"github.com/meetinglog-app/meetinglog/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply sql-migrate migrations when explicitly enabled. Production
	// deployments should manage schema via the migration CLI in CI/CD.
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run sql-migrate in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	versionRepo := repository.NewVersionRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	tagRepo := repository.NewTagRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Initialize generation client
	log.Println("🤖 Initializing generation client...")
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize services
	log.Println("✨ Initializing services...")
	resolverService := resolver.NewResolverService(participantRepo, tagRepo, cache.NewRedisCache(redisClient))
	meetingService := meeting.NewMeetingService(meetingRepo, versionRepo, actionItemRepo, templateRepo, resolverService, openaiClient, logger)
	actionItemService := actionitem.NewActionItemService(actionItemRepo, meetingRepo, resolverService, logger)
	tagService := tag.NewTagService(tagRepo)
	templateService := template.NewTemplateService(templateRepo)
	searchService := search.NewSearchService(meetingRepo, openaiClient)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService)
	actionItemHandler := handler.NewActionItemHandler(actionItemService)
	tagHandler := handler.NewTagHandler(tagService)
	templateHandler := handler.NewTemplateHandler(templateService)
	searchHandler := handler.NewSearchHandler(searchService)
	participantHandler := handler.NewParticipantHandler(resolverService, participantRepo)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, actionItemHandler, tagHandler, templateHandler, searchHandler, participantHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shutdown server: %v", err)
	}
	log.Println("✅ Server stopped")
}
