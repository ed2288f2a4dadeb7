package api

import (
	"bytes"
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-inventory-backend/internal/model"
)

var exportHeader = []string{
	"Asset Number", "Serial Number", "Barcode", "Location", "Status",
	"Staff Name", "Staff Number", "Condition", "Date Added", "Last Updated",
}

// ExportCSV handles GET /api/export. One row per asset, ascending by asset
// number, with the fixed 10-column layout.
func (h *Handler) ExportCSV(c *gin.Context) {
	assets, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve assets"})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export assets"})
		return
	}
	for _, a := range assets {
		row := []string{
			a.AssetNumber, a.SerialNumber, a.Barcode, a.Location, a.Status,
			a.StaffName, a.StaffNumber, a.Condition,
			a.DateAdded.Format(model.TimeLayout), a.LastUpdated.Format(model.TimeLayout),
		}
		if err := w.Write(row); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export assets"})
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to export assets"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=asset_inventory.csv`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
