package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"asset-inventory-backend/config"
	"asset-inventory-backend/internal/mw"
	"asset-inventory-backend/internal/scanner"
	"asset-inventory-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, sc scanner.Scanner, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	handler := NewHandler(s, sc, cacheStore)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/assets", caching, handler.ListAssets)
		api.POST("/assets", handler.CreateAsset)
		api.GET("/assets/search/barcode/:barcode", handler.GetAssetByBarcode)
		api.GET("/assets/:asset_number", handler.GetAsset)
		api.PUT("/assets/:asset_number", handler.UpdateAsset)
		api.DELETE("/assets/:asset_number", handler.DeleteAsset)

		api.POST("/scan", handler.ScanBarcode)
		api.GET("/export", caching, handler.ExportCSV)
	}

	r.GET("/health", handler.HealthCheck)

	return r
}
