package router

import "github.com/gin-gonic/gin"

func (r *Router) contactRoutes(rg *gin.RouterGroup) {
	contact := rg.Group("/contact")
	{
		// Public intake from the marketing site contact form
		contact.POST("", r.contactHandler.Intake)

		protected := contact.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("", r.contactHandler.List)
			protected.GET("/stats", r.contactHandler.Stats)
			protected.GET("/:id", r.contactHandler.Get)
			protected.PUT("/:id", r.contactHandler.Update)
			protected.DELETE("/:id", r.contactHandler.Delete)
		}
	}
}
