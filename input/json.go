package input

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tsawler/eventcap/model"
)

//go:embed schema.json
var blockSchema []byte

const schemaURL = "blocks.schema.json"

// ErrInvalidDocument is returned when a JSON block document does not match
// the block schema or carries inconsistent geometry.
var ErrInvalidDocument = errors.New("invalid block document")

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(blockSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

type blockDocument struct {
	Blocks []model.TextBlock `json:"blocks"`
}

// ReadBlocksJSON reads a JSON block document. Both the wrapped form
// {"blocks": [...]} and a bare array of blocks are accepted:
//
//	{"blocks": [{"text": "JAZZ NIGHT",
//	             "boundingBox": {"left": 100, "top": 40, "right": 620, "bottom": 120},
//	             "lines": [{"text": "JAZZ NIGHT"}]}]}
//
// The document is checked against the embedded schema before decoding,
// and every bounding box is checked with BBox.Validate after.
func ReadBlocksJSON(r io.Reader) ([]model.TextBlock, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var blocks []model.TextBlock
	if _, wrapped := v.(map[string]any); wrapped {
		var doc blockDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		blocks = doc.Blocks
	} else if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	for i, b := range blocks {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", ErrInvalidDocument, i, err)
		}
	}
	return blocks, nil
}

// WriteBlocksJSON writes blocks in the wrapped document form read by
// ReadBlocksJSON.
func WriteBlocksJSON(w io.Writer, blocks []model.TextBlock) error {
	if blocks == nil {
		blocks = []model.TextBlock{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(blockDocument{Blocks: blocks})
}
