package router

import "github.com/gin-gonic/gin"

func (r *Router) contentRoutes(rg *gin.RouterGroup) {
	studies := rg.Group("/work/case-studies")
	{
		studies.GET("", r.caseStudyHandler.List)

		protected := studies.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.caseStudyHandler.ListAdmin)
			protected.POST("", r.caseStudyHandler.Create)
			protected.PUT("/:id", r.caseStudyHandler.Update)
			protected.DELETE("/:id", r.caseStudyHandler.Delete)
		}

		studies.GET("/:id", r.caseStudyHandler.Get)
	}

	testimonials := rg.Group("/testimonials")
	{
		testimonials.GET("/active", r.testimonialHandler.ListActive)

		protected := testimonials.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("", r.testimonialHandler.List)
			protected.GET("/:id", r.testimonialHandler.Get)

			// Mutations are restricted to admins
			admin := protected.Group("")
			admin.Use(r.jwtMw.RequireAdmin())
			{
				admin.POST("", r.testimonialHandler.Create)
				admin.PUT("/:id", r.testimonialHandler.Update)
				admin.DELETE("/:id", r.testimonialHandler.Delete)
			}
		}
	}

	sections := rg.Group("/homepage-sections")
	{
		sections.GET("", r.homepageSectionHandler.List)

		protected := sections.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.homepageSectionHandler.ListAdmin)

			admin := protected.Group("")
			admin.Use(r.jwtMw.RequireAdmin())
			{
				admin.POST("", r.homepageSectionHandler.Create)
				admin.PUT("/:id", r.homepageSectionHandler.Update)
				admin.DELETE("/:id", r.homepageSectionHandler.Delete)
			}
		}

		sections.GET("/:id", r.homepageSectionHandler.Get)
	}

	logos := rg.Group("/logos")
	{
		logos.GET("", r.logoHandler.List)
		logos.GET("/default/:category", r.logoHandler.GetDefault)

		protected := logos.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/admin", r.logoHandler.ListAdmin)
			protected.POST("", r.logoHandler.Create)
			protected.PUT("/:id/set-default", r.logoHandler.SetDefault)
			protected.PUT("/:id", r.logoHandler.Update)
			protected.DELETE("/:id", r.logoHandler.Delete)
		}

		logos.GET("/:id", r.logoHandler.Get)
	}
}
