package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/photomatch/photomatch-backend/internal/delivery/http/handler"
	"github.com/photomatch/photomatch-backend/internal/delivery/http/middleware"
)

type Router struct {
	optimizerHandler *handler.OptimizerHandler
	bookingHandler   *handler.BookingHandler
	catalogHandler   *handler.CatalogHandler
	logger           zerolog.Logger
}

func NewRouter(
	optimizerHandler *handler.OptimizerHandler,
	bookingHandler *handler.BookingHandler,
	catalogHandler *handler.CatalogHandler,
	logger zerolog.Logger,
) *Router {
	return &Router{
		optimizerHandler: optimizerHandler,
		bookingHandler:   bookingHandler,
		catalogHandler:   catalogHandler,
		logger:           logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(r.logger))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		optimizer := v1.Group("/optimizer")
		{
			optimizer.POST("/select", r.optimizerHandler.Select)
			optimizer.POST("/explain", r.optimizerHandler.Explain)
		}

		v1.GET("/photographers", r.catalogHandler.ListPhotographers)
		v1.GET("/photographers/:id", r.catalogHandler.GetPhotographer)
		v1.POST("/catalog/refresh", r.catalogHandler.Refresh)

		bookings := v1.Group("/bookings")
		{
			bookings.POST("", r.bookingHandler.Create)
			bookings.GET("", r.bookingHandler.List)
			bookings.GET("/:id", r.bookingHandler.Get)
			bookings.PATCH("/:id/status", r.bookingHandler.UpdateStatus)
		}
	}

	return router
}
