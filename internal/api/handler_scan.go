package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-inventory-backend/internal/scanner"
	"asset-inventory-backend/internal/store"
)

// ScanBarcode handles POST /api/scan. It invokes the capture capability for
// one bounded attempt and, when the decoded barcode resolves to an existing
// record, includes that record so the caller can switch to editing it.
func (h *Handler) ScanBarcode(c *gin.Context) {
	code, err := h.scanner.Scan(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrUnavailable):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Barcode scanning not available"})
		case errors.Is(err, scanner.ErrNoBarcode):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No barcode detected"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Scan failed"})
		}
		return
	}

	resp := gin.H{"success": true, "barcode": code}
	if asset, err := h.store.GetByBarcode(c.Request.Context(), code); err == nil {
		resp["asset"] = toResponse(asset)
	} else if !errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resolve barcode"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
