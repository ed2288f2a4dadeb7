package internal

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"asset-inventory-backend/config"
	"asset-inventory-backend/internal/api"
	"asset-inventory-backend/internal/model"
	"asset-inventory-backend/internal/scanner"
	"asset-inventory-backend/internal/store"
)

// TestAssetLifecycle walks an asset through the full flow: capture a barcode
// from the (simulated) reader device, fail to resolve it, register the asset,
// re-scan and resolve to the existing record, reassign it, export, delete.
func TestAssetLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1. In-memory SQLite and migrations.
	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, testDB.AutoMigrate(&model.Asset{}))

	// 2. A scanner device file standing in for a line-mode barcode reader.
	devicePath := filepath.Join(t.TempDir(), "barcode0")
	require.NoError(t, os.WriteFile(devicePath, []byte("480912\n"), 0o644))
	dev := scanner.NewDevice(&config.ScannerConfig{
		Enabled:        true,
		DevicePath:     devicePath,
		TimeoutSeconds: 2,
		PollIntervalMS: 10,
	})

	appStore := store.NewGormStore(testDB)
	router := api.NewRouter(appStore, dev, &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != nil {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var out map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		return out
	}

	var dateAdded string

	t.Run("scan yields an unregistered barcode", func(t *testing.T) {
		w := do(http.MethodPost, "/api/scan", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(w)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "480912", resp["barcode"])
		assert.NotContains(t, resp, "asset")
	})

	t.Run("register the asset with the scanned barcode", func(t *testing.T) {
		w := do(http.MethodPost, "/api/assets", map[string]string{
			"asset_number":  "A100",
			"serial_number": "SN-0042",
			"barcode":       "480912",
			"location":      "Head Office",
			"status":        model.StatusAvailable,
			"condition":     model.ConditionGood,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(w)["success"])

		got := decode(do(http.MethodGet, "/api/assets/A100", nil))
		assert.Equal(t, model.StatusAvailable, got["status"])
		dateAdded = got["date_added"].(string)
		require.NotEmpty(t, dateAdded)
	})

	t.Run("re-scan resolves to the existing record", func(t *testing.T) {
		w := do(http.MethodPost, "/api/scan", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(w)
		assert.Equal(t, true, resp["success"])

		asset, ok := resp["asset"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "A100", asset["asset_number"])
	})

	t.Run("assign the asset to a staff member", func(t *testing.T) {
		// Make sure a refreshed last_updated is observable in the wire format.
		time.Sleep(1100 * time.Millisecond)

		w := do(http.MethodPut, "/api/assets/A100", map[string]string{
			"asset_number":  "A100",
			"serial_number": "SN-0042",
			"barcode":       "480912",
			"location":      "Branch Office",
			"status":        model.StatusAssigned,
			"staff_name":    "J. Doe",
			"staff_number":  "E42",
			"condition":     model.ConditionGood,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(w)["success"])

		got := decode(do(http.MethodGet, "/api/assets/A100", nil))
		assert.Equal(t, model.StatusAssigned, got["status"])
		assert.Equal(t, "J. Doe", got["staff_name"])
		assert.Equal(t, dateAdded, got["date_added"])
		assert.NotEqual(t, dateAdded, got["last_updated"])
	})

	t.Run("export reflects the updated record", func(t *testing.T) {
		w := do(http.MethodGet, "/api/export", nil)
		require.Equal(t, http.StatusOK, w.Code)

		rows, err := csv.NewReader(w.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "A100", rows[1][0])
		assert.Equal(t, model.StatusAssigned, rows[1][4])
		assert.Equal(t, "J. Doe", rows[1][5])
	})

	t.Run("delete the asset", func(t *testing.T) {
		w := do(http.MethodDelete, "/api/assets/A100", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(w)["success"])

		w = do(http.MethodGet, "/api/assets/search/barcode/480912", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var list []map[string]any
		w = do(http.MethodGet, "/api/assets", nil)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Empty(t, list)
	})
}
