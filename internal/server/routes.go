package server

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexnogueira4/side-take-home/internal/handler"
	"github.com/alexnogueira4/side-take-home/internal/middleware"
	"github.com/alexnogueira4/side-take-home/internal/repository"
	"github.com/alexnogueira4/side-take-home/internal/response"
	"github.com/alexnogueira4/side-take-home/internal/service"
	"github.com/alexnogueira4/side-take-home/internal/validation"
)

func (s *Server) RegisterRoutes() http.Handler {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	h := handler.NewPropertyHandler(
		service.NewPropertyService(
			repository.NewPropertyRepository(s.db.DB()),
		),
	)

	properties := r.Group("/properties")
	{
		properties.GET("",
			middleware.Validate(middleware.Targets{Query: validation.ListQuerySchema}),
			h.FindAll)
		properties.GET("/:id",
			middleware.Validate(middleware.Targets{Params: validation.PropertyIDSchema}),
			h.GetByID)
		properties.POST("",
			middleware.Validate(middleware.Targets{Body: validation.PropertySchema}),
			h.Create)
		properties.PUT("/:id",
			middleware.Validate(middleware.Targets{Params: validation.PropertyIDSchema, Body: validation.PropertySchema}),
			h.Update)
		properties.DELETE("/:id",
			middleware.Validate(middleware.Targets{Params: validation.PropertyIDSchema}),
			h.Delete)
	}

	r.GET("/health", s.healthHandler)

	r.NoRoute(func(c *gin.Context) {
		response.ApiError(c, http.StatusNotFound, "Route not found")
	})

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.db.Health())
}
