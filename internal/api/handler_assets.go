package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-inventory-backend/internal/model"
	"asset-inventory-backend/internal/store"
)

// assetRequest is the permissive write payload: absent fields bind to the
// empty string rather than being rejected.
type assetRequest struct {
	AssetNumber  string `json:"asset_number"`
	SerialNumber string `json:"serial_number"`
	Barcode      string `json:"barcode"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	StaffName    string `json:"staff_name"`
	StaffNumber  string `json:"staff_number"`
	Condition    string `json:"condition"`
}

func (r assetRequest) toModel() model.Asset {
	return model.Asset{
		AssetNumber:  r.AssetNumber,
		SerialNumber: r.SerialNumber,
		Barcode:      r.Barcode,
		Location:     r.Location,
		Status:       r.Status,
		StaffName:    r.StaffName,
		StaffNumber:  r.StaffNumber,
		Condition:    r.Condition,
	}
}

// assetResponse is the wire representation of an asset; timestamps are
// rendered in the fixed "2006-01-02 15:04:05" layout.
type assetResponse struct {
	model.Asset
	DateAdded   string `json:"date_added"`
	LastUpdated string `json:"last_updated"`
}

func toResponse(a model.Asset) assetResponse {
	return assetResponse{
		Asset:       a,
		DateAdded:   a.DateAdded.Format(model.TimeLayout),
		LastUpdated: a.LastUpdated.Format(model.TimeLayout),
	}
}

// ListAssets handles GET /api/assets.
func (h *Handler) ListAssets(c *gin.Context) {
	assets, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve assets"})
		return
	}

	responses := make([]assetResponse, 0, len(assets))
	for _, a := range assets {
		responses = append(responses, toResponse(a))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateAsset handles POST /api/assets.
func (h *Handler) CreateAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if req.AssetNumber == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Asset number is required"})
		return
	}

	if _, err := h.store.Create(c.Request.Context(), req.toModel()); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Error: asset number or barcode already exists"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add asset"})
		return
	}

	h.cache.Flush()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Asset added successfully"})
}

// GetAsset handles GET /api/assets/:asset_number.
func (h *Handler) GetAsset(c *gin.Context) {
	asset, err := h.store.GetByAssetNumber(c.Request.Context(), c.Param("asset_number"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Asset not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve asset"})
		return
	}
	c.JSON(http.StatusOK, toResponse(asset))
}

// GetAssetByBarcode handles GET /api/assets/search/barcode/:barcode.
func (h *Handler) GetAssetByBarcode(c *gin.Context) {
	asset, err := h.store.GetByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Asset not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve asset"})
		return
	}
	c.JSON(http.StatusOK, toResponse(asset))
}

// UpdateAsset handles PUT /api/assets/:asset_number. The record is addressed
// by its current asset number; the payload may carry a new one. An absent
// asset_number in the payload keeps the current number rather than clearing
// the external key.
func (h *Handler) UpdateAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	assetNumber := c.Param("asset_number")
	if req.AssetNumber == "" {
		req.AssetNumber = assetNumber
	}

	if _, err := h.store.Update(c.Request.Context(), assetNumber, req.toModel()); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Asset not found"})
		case errors.Is(err, store.ErrDuplicateKey):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Error: asset number or barcode already exists"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update asset"})
		}
		return
	}

	h.cache.Flush()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Asset updated successfully"})
}

// DeleteAsset handles DELETE /api/assets/:asset_number. Deletion is
// idempotent at the store; the response reports whether a record was removed.
func (h *Handler) DeleteAsset(c *gin.Context) {
	deleted, err := h.store.Delete(c.Request.Context(), c.Param("asset_number"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete asset"})
		return
	}
	if !deleted {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Asset not found"})
		return
	}

	h.cache.Flush()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Asset deleted successfully"})
}
