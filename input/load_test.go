package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const posterHOCR = `<!DOCTYPE html>
<html><body>
<div class="ocr_page" title="bbox 0 0 800 1000">
  <div class="ocr_carea" title="bbox 100 40 620 120">
    <span class="ocr_line" title="bbox 100 40 620 120"><span class="ocrx_word">JAZZ</span> <span class="ocrx_word">NIGHT</span></span>
  </div>
</div>
</body></html>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "poster.json", posterDocument)

	blocks, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
}

func TestLoad_HOCR(t *testing.T) {
	path := writeFile(t, "poster.hocr", posterHOCR)

	blocks, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "JAZZ NIGHT", blocks[0].Text)
}

func TestLoad_ContentBeatsExtension(t *testing.T) {
	path := writeFile(t, "poster.txt", posterDocument)

	blocks, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
}

func TestLoad_Unsupported(t *testing.T) {
	path := writeFile(t, "notes.txt", "just some notes")

	_, err := Load(context.Background(), path, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), Options{})
	assert.Error(t, err)
}

func TestLoad_InvalidDocument(t *testing.T) {
	path := writeFile(t, "bad.json", `{"blocks": [{"lines": []}]}`)

	_, err := Load(context.Background(), path, Options{})
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoadBytes_CancelledBeforeOCR(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")
	_, err := LoadBytes(ctx, "poster.png", png, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
