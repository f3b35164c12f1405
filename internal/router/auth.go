package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)

		// Protected routes (JWT authentication required)
		protected := auth.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.POST("/logout", r.authHandler.Logout)
		}
	}
}

func (r *Router) userRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(r.jwtMw.RequireAuth())
	{
		users.GET("/profile", r.userHandler.Profile)
	}
}
