package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeaders())

	metrics := NewMetrics(cfg.Database)
	router.Use(metrics.Middleware())
	router.GET("/metrics", metrics.Handler())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/", health.Index)
	router.GET("/health", health.Status)

	wishlists := NewWishlistController(cfg.WishlistService)
	router.POST("/wishlist_entry", wishlists.AddEntry)
	router.DELETE("/wishlist_entry", wishlists.RemoveEntry)
	router.GET("/wishlist/:wishlist_id", wishlists.GetWishlist)

	return router
}
