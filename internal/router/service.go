package router

import "github.com/gin-gonic/gin"

func (r *Router) serviceRoutes(rg *gin.RouterGroup) {
	services := rg.Group("/services")
	{
		services.GET("", r.serviceHandler.List)

		protected := services.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.serviceHandler.ListAdmin)
			protected.POST("", r.serviceHandler.Create)
			protected.PUT("/:id", r.serviceHandler.Update)
			protected.DELETE("/:id", r.serviceHandler.Delete)
		}

		services.GET("/:id", r.serviceHandler.Get)
	}

	categories := rg.Group("/service-categories")
	{
		categories.GET("", r.serviceCategoryHandler.List)

		protected := categories.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.serviceCategoryHandler.ListAdmin)
			protected.POST("", r.serviceCategoryHandler.Create)
			protected.PUT("/reorder", r.serviceCategoryHandler.Reorder)
			protected.PUT("/:id", r.serviceCategoryHandler.Update)
			protected.DELETE("/:id", r.serviceCategoryHandler.Delete)
		}

		categories.GET("/:id", r.serviceCategoryHandler.Get)
	}
}
