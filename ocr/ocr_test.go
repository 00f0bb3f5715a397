//go:build ocr

package ocr

import (
	"image"
	"testing"
)

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognizeBlocks(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	pngData := createTestPNG(100, 50)

	// The test image is just a rectangle; only check the call succeeds
	blocks, err := client.RecognizeBlocks(pngData)
	if err != nil {
		t.Errorf("RecognizeBlocks failed: %v", err)
	}
	for _, b := range blocks {
		if b.BoundingBox != nil && b.BoundingBox.Right > 100 {
			t.Errorf("block %v lies outside the original image", b.BoundingBox)
		}
	}
}

func TestRecognizeBlocks_InvalidImage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if _, err := client.RecognizeBlocks([]byte("not an image")); err == nil {
		t.Error("Expected error for invalid image data")
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestUnscale(t *testing.T) {
	got := unscale(image.Rect(20, 40, 200, 100), 2)
	if got.String() != "[10,20 100,50]" {
		t.Errorf("unscale() = %v, want [10,20 100,50]", got)
	}
}
