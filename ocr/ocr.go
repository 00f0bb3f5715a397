//go:build ocr

// Package ocr recognizes text blocks in event poster images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system and the "ocr" build tag. On
// macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/eventcap/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client   *gosseract.Client
	minWidth int
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client, minWidth: DefaultMinWidth}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetMinWidth sets the width below which images are upscaled before
// recognition. 0 disables upscaling.
func (c *Client) SetMinWidth(width int) {
	c.minWidth = width
}

// RecognizeBlocks performs OCR on image data and returns the text blocks
// with their lines, in the original image's coordinates.
func (c *Client) RecognizeBlocks(imageData []byte) ([]model.TextBlock, error) {
	prepared, scale, err := PrepareImage(imageData, c.minWidth)
	if err != nil {
		return nil, err
	}

	if err := c.client.SetImageFromBytes(prepared); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	blocks, err := c.client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	lines, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	return AssembleBlocks(toRegions(blocks, scale), toRegions(lines, scale)), nil
}

// toRegions converts gosseract boxes, undoing the preparation scale
func toRegions(boxes []gosseract.BoundingBox, scale float64) []Region {
	regions := make([]Region, 0, len(boxes))
	for _, b := range boxes {
		regions = append(regions, Region{Text: b.Word, Box: unscale(b.Box, scale)})
	}
	return regions
}

func unscale(r image.Rectangle, scale float64) model.BBox {
	if scale <= 0 {
		scale = 1
	}
	at := func(v int) int {
		return int(float64(v)/scale + 0.5)
	}
	return model.NewBBox(at(r.Min.X), at(r.Min.Y), at(r.Max.X), at(r.Max.Y))
}
