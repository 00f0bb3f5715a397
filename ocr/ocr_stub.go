//go:build !ocr

// Package ocr recognizes text blocks in event poster images.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Recognition returns ErrOCRNotEnabled; the image and text helpers work
// either way.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "github.com/tsawler/eventcap/model"

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetMinWidth is a no-op for the stub client.
func (c *Client) SetMinWidth(width int) {}

// RecognizeBlocks returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeBlocks(imageData []byte) ([]model.TextBlock, error) {
	return nil, ErrOCRNotEnabled
}
