// Package input loads the text blocks of an event poster from disk.
//
// Three sources are supported: JSON block documents (see ReadBlocksJSON),
// hOCR files, and raster images, which are recognized with the ocr
// package. The source format is detected from the file contents first and
// the file extension second.
package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/eventcap/format"
	"github.com/tsawler/eventcap/hocr"
	"github.com/tsawler/eventcap/model"
	"github.com/tsawler/eventcap/ocr"
)

// ErrUnsupportedFormat is returned for files that are neither a block
// document, hOCR nor a supported image.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Options controls how images are recognized
type Options struct {
	// OCRLanguage is the Tesseract language code. Empty uses the engine
	// default ("eng").
	OCRLanguage string

	// MinWidth is the image width below which images are upscaled before
	// recognition. Zero uses ocr.DefaultMinWidth.
	MinWidth int

	// Logger receives debug output. Nil uses slog.Default().
	Logger *slog.Logger
}

// Load reads the blocks of the file at path
func Load(ctx context.Context, path string, opts Options) ([]model.TextBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return LoadBytes(ctx, path, data, opts)
}

// LoadBytes reads blocks from data. name is used for extension-based
// format detection and error messages; it may be empty.
func LoadBytes(ctx context.Context, name string, data []byte, opts Options) ([]model.TextBlock, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f := format.DetectFile(name, data)

	var (
		blocks []model.TextBlock
		err    error
	)
	switch {
	case f == format.JSON:
		blocks, err = ReadBlocksJSON(bytes.NewReader(data))
	case f == format.HOCR:
		blocks, err = hocr.Parse(bytes.NewReader(data))
	case f.IsImage():
		blocks, err = recognize(ctx, data, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}

	logger.Debug("loaded blocks", "source", name, "format", f.String(), "blocks", len(blocks))
	return blocks, nil
}

func recognize(ctx context.Context, data []byte, opts Options) ([]model.TextBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if opts.OCRLanguage != "" {
		if err := client.SetLanguage(opts.OCRLanguage); err != nil {
			return nil, err
		}
	}
	if opts.MinWidth > 0 {
		client.SetMinWidth(opts.MinWidth)
	}

	return client.RecognizeBlocks(data)
}
