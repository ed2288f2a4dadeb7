package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-inventory-backend/config"
	"asset-inventory-backend/internal/api"
	"asset-inventory-backend/internal/db"
	"asset-inventory-backend/internal/scanner"
	"asset-inventory-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "inventoryd ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded (config file: %s)", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	appStore := store.NewGormStore(gormDB)
	logger.Println("record store initialized")

	// Select the capture capability once; the API path is identical whether
	// or not a device is present.
	var barcodeScanner scanner.Scanner
	if cfg.Scanner.Enabled && cfg.Scanner.DevicePath != "" {
		barcodeScanner = scanner.NewDevice(&cfg.Scanner)
		logger.Printf("barcode scanner enabled on %s", cfg.Scanner.DevicePath)
	} else {
		barcodeScanner = scanner.Unavailable{}
		logger.Println("barcode scanner not configured; scan requests will report unavailable")
	}

	router := api.NewRouter(appStore, barcodeScanner, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
