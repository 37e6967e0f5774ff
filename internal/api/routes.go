package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pustakadigital/relevance/internal/telemetry"
)

// SetupRoutes registers all endpoints on the router.
func SetupRoutes(router *gin.Engine, handler *Handler, provider *telemetry.Provider) {
	router.GET("/health", handler.Health)
	router.GET("/ready", handler.Ready)
	router.GET("/metrics", gin.WrapH(provider.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/search", handler.Search)
		v1.POST("/recommend", handler.Recommend)
		v1.POST("/classify", handler.Classify)
		v1.POST("/classify/batch", handler.ClassifyBatch)
		v1.POST("/classify/language", handler.DetectLanguage)
		v1.POST("/classify/topics", handler.ExtractTopics)
	}
}
