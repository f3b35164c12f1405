package router

import "github.com/gin-gonic/gin"

func (r *Router) teamRoutes(rg *gin.RouterGroup) {
	members := rg.Group("/team-members")
	{
		members.GET("", r.teamMemberHandler.List)

		protected := members.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.teamMemberHandler.ListAdmin)
			protected.POST("", r.teamMemberHandler.Create)
			protected.PUT("/reorder", r.teamMemberHandler.Reorder)
			protected.PUT("/:id", r.teamMemberHandler.Update)
			protected.DELETE("/:id", r.teamMemberHandler.Delete)
		}

		members.GET("/:id", r.teamMemberHandler.Get)
	}

	fields := rg.Group("/form-fields")
	{
		fields.GET("", r.formFieldHandler.List)

		protected := fields.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.formFieldHandler.ListAdmin)
			protected.POST("", r.formFieldHandler.Create)
			protected.PUT("/reorder", r.formFieldHandler.Reorder)
			protected.PUT("/:id", r.formFieldHandler.Update)
			protected.DELETE("/:id", r.formFieldHandler.Delete)
		}

		fields.GET("/:id", r.formFieldHandler.Get)
	}
}
