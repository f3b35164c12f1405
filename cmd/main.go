package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	configs "github.com/almaspay/backend/config"
	"github.com/almaspay/backend/internal/handler"
	"github.com/almaspay/backend/internal/middleware"
	"github.com/almaspay/backend/internal/repository"
	"github.com/almaspay/backend/internal/router"
	"github.com/almaspay/backend/internal/service"
	"github.com/almaspay/backend/pkg/database"
	"github.com/almaspay/backend/pkg/logger"
	"github.com/almaspay/backend/pkg/mailer"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	db, err := database.NewPostgresDB(config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.RunMigrations(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed the default admin account. A failure here is not fatal: the
	// account may already exist, or be created later via the seed endpoint.
	if err := database.SeedAdminUser(db); err != nil {
		logger.GetLogger().Error("Failed to seed admin user", zap.Error(err))
	}

	mail, err := mailer.NewMailer(config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to initialize mailer", zap.Error(err))
	}
	if !mail.Enabled() {
		logger.GetLogger().Warn("SMTP not configured, contact notifications disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewServiceCategoryRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	fieldRepo := repository.NewFormFieldRepository(db)
	studyRepo := repository.NewCaseStudyRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	sectionRepo := repository.NewHomepageSectionRepository(db)
	logoRepo := repository.NewLogoRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	tokenService := service.NewTokenService(config)
	userService := service.NewUserService(userRepo, tokenService)
	serviceService := service.NewServiceService(serviceRepo)
	categoryService := service.NewServiceCategoryService(categoryRepo)
	memberService := service.NewTeamMemberService(memberRepo)
	fieldService := service.NewFormFieldService(fieldRepo)
	studyService := service.NewCaseStudyService(studyRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	sectionService := service.NewHomepageSectionService(sectionRepo)
	logoService := service.NewLogoService(logoRepo)
	contactService := service.NewContactService(contactRepo, mail)
	seedService := service.NewSeedService(db)

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	serviceHandler := handler.NewServiceHandler(serviceService)
	categoryHandler := handler.NewServiceCategoryHandler(categoryService)
	memberHandler := handler.NewTeamMemberHandler(memberService)
	fieldHandler := handler.NewFormFieldHandler(fieldService)
	studyHandler := handler.NewCaseStudyHandler(studyService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	sectionHandler := handler.NewHomepageSectionHandler(sectionService)
	logoHandler := handler.NewLogoHandler(logoService)
	contactHandler := handler.NewContactHandler(contactService)
	seedHandler := handler.NewSeedHandler(seedService)
	analyticsHandler := handler.NewAnalyticsHandler()
	healthHandler := handler.NewHealthHandler()

	jwtMiddleware := middleware.NewJWTMiddleware(tokenService)

	engine := router.NewRouter(
		authHandler,
		userHandler,
		serviceHandler,
		categoryHandler,
		memberHandler,
		fieldHandler,
		studyHandler,
		testimonialHandler,
		sectionHandler,
		logoHandler,
		contactHandler,
		seedHandler,
		analyticsHandler,
		healthHandler,

		jwtMiddleware,
		config,
	).SetupRoutes()

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.App.Timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.GetLogger().Error("Server forced to shutdown", zap.Error(err))
	}
}
