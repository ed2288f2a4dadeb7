package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeviceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barcode0")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUnavailableScanner(t *testing.T) {
	_, err := Unavailable{}.Scan(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDeviceScanReadsCode(t *testing.T) {
	d := &Device{
		Path:         writeDeviceFile(t, "ABC123\n"),
		Timeout:      2 * time.Second,
		PollInterval: 10 * time.Millisecond,
	}

	code, err := d.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ABC123", code)
}

func TestDeviceScanTrimsWhitespace(t *testing.T) {
	d := &Device{
		Path:         writeDeviceFile(t, "  ABC123 \r\n"),
		Timeout:      2 * time.Second,
		PollInterval: 10 * time.Millisecond,
	}

	code, err := d.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ABC123", code)
}

func TestDeviceScanWaitsForLateCode(t *testing.T) {
	path := writeDeviceFile(t, "")
	d := &Device{
		Path:         path,
		Timeout:      2 * time.Second,
		PollInterval: 10 * time.Millisecond,
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		defer f.Close()
		f.WriteString("XYZ789\n")
	}()

	code, err := d.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", code)
}

func TestDeviceScanTimesOut(t *testing.T) {
	d := &Device{
		Path:         writeDeviceFile(t, ""),
		Timeout:      60 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
	}

	start := time.Now()
	_, err := d.Scan(context.Background())
	assert.ErrorIs(t, err, ErrNoBarcode)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDeviceScanMissingDevice(t *testing.T) {
	d := &Device{
		Path:         filepath.Join(t.TempDir(), "does-not-exist"),
		Timeout:      time.Second,
		PollInterval: 10 * time.Millisecond,
	}

	_, err := d.Scan(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDeviceScanHonorsCancel(t *testing.T) {
	d := &Device{
		Path:         writeDeviceFile(t, ""),
		Timeout:      10 * time.Second,
		PollInterval: 10 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := d.Scan(ctx)
	assert.ErrorIs(t, err, ErrNoBarcode)
	assert.Less(t, time.Since(start), time.Second)
}
