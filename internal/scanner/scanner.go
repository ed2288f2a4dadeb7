package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"asset-inventory-backend/config"
)

var (
	// ErrUnavailable means no capture device is configured or it cannot be
	// opened. Never fatal: callers report it as a structured outcome.
	ErrUnavailable = errors.New("barcode scanning not available")
	// ErrNoBarcode means the bounded attempt window elapsed without a decode.
	ErrNoBarcode = errors.New("no barcode detected")
)

// Scanner is the external barcode capture capability. Implementations block
// for at most a bounded window and either yield a decoded barcode string or
// report why they could not.
type Scanner interface {
	Scan(ctx context.Context) (string, error)
}

// Unavailable is the stub used when no capture device is configured.
type Unavailable struct{}

func (Unavailable) Scan(context.Context) (string, error) {
	return "", ErrUnavailable
}

// Device reads decoded scans from a barcode reader exposed as a device file
// in line mode (HID/serial readers emit the code followed by a newline). The
// attempt is bounded: if nothing is decoded within the timeout the scan
// reports ErrNoBarcode rather than blocking the request.
type Device struct {
	Path         string
	Timeout      time.Duration
	PollInterval time.Duration
}

// NewDevice creates a Device scanner from configuration.
func NewDevice(cfg *config.ScannerConfig) *Device {
	return &Device{
		Path:         cfg.DevicePath,
		Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
		PollInterval: time.Duration(cfg.PollIntervalMS) * time.Millisecond,
	}
}

// Scan performs a single bounded capture attempt.
func (d *Device) Scan(ctx context.Context) (string, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", d.Path, ErrUnavailable)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	codes := make(chan string, 1)
	go func() {
		reader := bufio.NewReader(f)
		for {
			line, err := reader.ReadString('\n')
			if code := strings.TrimSpace(line); code != "" {
				codes <- code
				return
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					// Closed or unreadable device; the outer select times out.
					return
				}
				// Nothing buffered yet, wait for the reader to emit a scan.
				select {
				case <-ctx.Done():
					return
				case <-time.After(d.PollInterval):
				}
			}
		}
	}()

	select {
	case code := <-codes:
		return code, nil
	case <-ctx.Done():
		return "", ErrNoBarcode
	}
}
