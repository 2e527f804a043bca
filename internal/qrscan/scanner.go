// Package qrscan reads QR codes from images and pulls structured content
// out of the decoded text.
package qrscan

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrDecodeFailure is returned when no QR code could be read from an image.
var ErrDecodeFailure = errors.New("could not scan QR code")

// MaxImageBytes bounds how much of an image stream Scan will read.
const MaxImageBytes = 5 << 20

// Scanner turns an image stream into the text of the QR code it contains.
type Scanner interface {
	Scan(ctx context.Context, r io.Reader) (string, error)
}

// ImageScanner decodes PNG, JPEG and GIF images.
type ImageScanner struct {
	// TryHarder trades speed for accuracy on noisy images.
	TryHarder bool
}

// NewImageScanner returns a scanner with TryHarder enabled.
func NewImageScanner() *ImageScanner {
	return &ImageScanner{TryHarder: true}
}

// Scan implements Scanner.
func (s *ImageScanner) Scan(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	img, _, err := image.Decode(io.LimitReader(r, MaxImageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading image: %v", ErrDecodeFailure, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.ScanImage(img)
}

// ScanImage decodes an already loaded image.
func (s *ImageScanner) ScanImage(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	var hints map[gozxing.DecodeHintType]interface{}
	if s.TryHarder {
		hints = map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		}
	}
	res, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return res.GetText(), nil
}
