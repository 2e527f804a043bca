package qrscan

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, text string) *bytes.Buffer {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, matrix))
	return &buf
}

func TestScanRoundTrip(t *testing.T) {
	texts := []string{
		"https://calckit.example/r/42",
		"WIFI:S:home;T:WPA;P:secret;;",
		"plain text with spaces",
	}
	s := NewImageScanner()
	for _, text := range texts {
		got, err := s.Scan(context.Background(), encodePNG(t, text))
		require.NoError(t, err, text)
		assert.Equal(t, text, got)
	}
}

func TestScanBlankImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	_, err := NewImageScanner().Scan(context.Background(), &buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecodeFailure))
	assert.Contains(t, err.Error(), "could not scan QR code")
}

func TestScanNotAnImage(t *testing.T) {
	_, err := NewImageScanner().Scan(context.Background(), strings.NewReader("definitely not a png"))
	assert.True(t, errors.Is(err, ErrDecodeFailure))
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewImageScanner().Scan(ctx, encodePNG(t, "x"))
	assert.True(t, errors.Is(err, context.Canceled))
}
