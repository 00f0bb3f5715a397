package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMinWidth is the width below which images are upscaled before
// recognition. Tesseract loses accuracy on small glyphs.
const DefaultMinWidth = 1000

// PrepareImage decodes any supported image (PNG, JPEG, GIF, BMP, TIFF,
// WebP), upscales it when it is narrower than minWidth, and re-encodes it
// as PNG. The returned scale maps coordinates in the prepared image back
// to the original: divide by it. A minWidth of 0 disables upscaling.
func PrepareImage(data []byte, minWidth int) ([]byte, float64, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("decoding image: %w", err)
	}

	scale := 1.0
	bounds := img.Bounds()
	if minWidth > 0 && bounds.Dx() > 0 && bounds.Dx() < minWidth {
		scale = float64(minWidth) / float64(bounds.Dx())
		dst := image.NewRGBA(image.Rect(0, 0, minWidth, int(float64(bounds.Dy())*scale+0.5)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, 0, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), scale, nil
}
