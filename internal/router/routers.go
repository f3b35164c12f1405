package router

import (
	"time"

	"github.com/almaspay/backend/config"
	"github.com/almaspay/backend/internal/handler"
	"github.com/almaspay/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler            *handler.AuthHandler
	userHandler            *handler.UserHandler
	serviceHandler         *handler.ServiceHandler
	serviceCategoryHandler *handler.ServiceCategoryHandler
	teamMemberHandler      *handler.TeamMemberHandler
	formFieldHandler       *handler.FormFieldHandler
	caseStudyHandler       *handler.CaseStudyHandler
	testimonialHandler     *handler.TestimonialHandler
	homepageSectionHandler *handler.HomepageSectionHandler
	logoHandler            *handler.LogoHandler
	contactHandler         *handler.ContactHandler
	seedHandler            *handler.SeedHandler
	analyticsHandler       *handler.AnalyticsHandler
	healthHandler          *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	services *handler.ServiceHandler,
	categories *handler.ServiceCategoryHandler,
	members *handler.TeamMemberHandler,
	fields *handler.FormFieldHandler,
	studies *handler.CaseStudyHandler,
	testimonials *handler.TestimonialHandler,
	sections *handler.HomepageSectionHandler,
	logos *handler.LogoHandler,
	contacts *handler.ContactHandler,
	seeds *handler.SeedHandler,
	analytics *handler.AnalyticsHandler,
	health *handler.HealthHandler,

	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:            auth,
		userHandler:            user,
		serviceHandler:         services,
		serviceCategoryHandler: categories,
		teamMemberHandler:      members,
		formFieldHandler:       fields,
		caseStudyHandler:       studies,
		testimonialHandler:     testimonials,
		homepageSectionHandler: sections,
		logoHandler:            logos,
		contactHandler:         contacts,
		seedHandler:            seeds,
		analyticsHandler:       analytics,
		healthHandler:          health,

		jwtMw:  jwtMw,
		Config: cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS(r.Config))

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.Health)

		api.Use(middleware.RateLimit(r.Config.RateLimit.Request, time.Duration(r.Config.RateLimit.Duration)*time.Second))

		r.authRoutes(api)
		r.userRoutes(api)
		r.serviceRoutes(api)
		r.teamRoutes(api)
		r.contentRoutes(api)
		r.contactRoutes(api)
		r.seedRoutes(api)
		r.analyticsRoutes(api)
	}

	return router
}

func (r *Router) analyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(r.jwtMw.RequireAuth())
	{
		analytics.GET("", r.analyticsHandler.General)
		analytics.GET("/dashboard", r.analyticsHandler.Dashboard)
	}
}

func (r *Router) seedRoutes(rg *gin.RouterGroup) {
	seed := rg.Group("/seed")
	seed.Use(r.jwtMw.RequireAuth(), r.jwtMw.RequireAdmin())
	{
		seed.POST("/admin", r.seedHandler.SeedAdmin)
		seed.POST("/service-categories", r.seedHandler.SeedServiceCategories)
		seed.POST("/team-members", r.seedHandler.SeedTeamMembers)
		seed.POST("/form-fields", r.seedHandler.SeedFormFields)
		seed.POST("/sample-data", r.seedHandler.SeedSampleData)
		seed.DELETE("/clear-sample-data", r.seedHandler.ClearSampleData)
	}
}
