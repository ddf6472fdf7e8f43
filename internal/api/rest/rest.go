package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/mythicforge/hero-forge/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		// Player endpoints (open)
		api.POST("/reveal", handler.RevealToken)
		api.POST("/customize", handler.CustomizeToken)

		// Character CRUD (requires authentication)
		api.GET("/nfts", middleware.Auth(authCfg), handler.ListCharacters)
		api.GET("/nfts/:nftId", middleware.Auth(authCfg), handler.GetCharacter)
		api.PUT("/nfts/:nftId", middleware.Auth(authCfg), handler.UpdateCharacter)
		api.DELETE("/nfts/:nftId", middleware.Auth(authCfg), handler.DeleteCharacter)

		// Admin endpoints (requires authentication)
		admin := api.Group("/admin", middleware.Auth(authCfg))
		{
			admin.POST("/rerender", handler.RerenderToken)
			admin.POST("/ipfs", handler.UploadIPFS)
			admin.POST("/metadata-url", handler.UpdateMetadataURL)
		}
	}
}
