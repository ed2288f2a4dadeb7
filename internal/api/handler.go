package api

import (
	"github.com/patrickmn/go-cache"

	"asset-inventory-backend/internal/scanner"
	"asset-inventory-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	scanner scanner.Scanner
	cache   *cache.Cache
}

// NewHandler creates a new API handler. The cache is shared with the caching
// middleware; mutating handlers flush it after a successful write.
func NewHandler(s store.Store, sc scanner.Scanner, c *cache.Cache) *Handler {
	return &Handler{
		store:   s,
		scanner: sc,
		cache:   c,
	}
}
