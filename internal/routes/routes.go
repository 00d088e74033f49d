package routes

import (
	"github.com/gin-gonic/gin"

	handler "invoice-dashboard-backend/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, seedHandler *handler.SeedHandler) {
	api := r.Group("/api")

	// Health check
	api.GET("/health", seedHandler.Health)

	seed := api.Group("/seed")
	seed.GET("", seedHandler.Seed)
	seed.GET("/runs/:runId", seedHandler.GetRun)
}
