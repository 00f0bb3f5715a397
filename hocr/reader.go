// Package hocr reads hOCR documents, the HTML output format of Tesseract
// and other OCR engines, into text blocks.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/eventcap/model"
)

// hOCR element classes
const (
	classArea      = "ocr_carea"
	classParagraph = "ocr_par"
	classLine      = "ocr_line"
	classWord      = "ocrx_word"
)

// Line classes other than ocr_line that engines emit for text lines
var lineClasses = []string{classLine, "ocr_header", "ocr_caption", "ocr_textfloat"}

// Open parses an hOCR file.
func Open(filename string) ([]model.TextBlock, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an hOCR document. Every content area (ocr_carea) becomes a
// block; documents without areas fall back to paragraphs (ocr_par), then
// to single lines. A block's text is its lines joined with newlines, and
// its bounding box comes from the element's bbox property or, failing
// that, the union of its lines' boxes. Blocks without text are dropped.
func Parse(r io.Reader) ([]model.TextBlock, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	containers := findByClass(doc, classArea)
	if len(containers) == 0 {
		containers = findByClass(doc, classParagraph)
	}
	if len(containers) == 0 {
		containers = findByClass(doc, lineClasses...)
	}

	var blocks []model.TextBlock
	for _, n := range containers {
		if block, ok := buildBlock(n); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

// buildBlock converts a container element into a text block
func buildBlock(n *html.Node) (model.TextBlock, bool) {
	lineNodes := findByClass(n, lineClasses...)
	if len(lineNodes) == 0 {
		lineNodes = []*html.Node{n}
	}

	var block model.TextBlock
	texts := make([]string, 0, len(lineNodes))
	var union *model.BBox

	for _, ln := range lineNodes {
		text := lineText(ln)
		if text == "" {
			continue
		}
		line := model.Line{Text: text, BoundingBox: nodeBBox(ln)}
		if line.BoundingBox != nil {
			if union == nil {
				b := *line.BoundingBox
				union = &b
			} else {
				*union = union.Union(*line.BoundingBox)
			}
		}
		block.Lines = append(block.Lines, line)
		texts = append(texts, text)
	}

	if len(texts) == 0 {
		return model.TextBlock{}, false
	}

	block.Text = strings.Join(texts, "\n")
	block.BoundingBox = nodeBBox(n)
	if block.BoundingBox == nil {
		block.BoundingBox = union
	}
	return block, true
}

// lineText joins a line's words with single spaces. Lines without word
// elements use their whitespace-collapsed text content.
func lineText(n *html.Node) string {
	words := findByClass(n, classWord)
	if len(words) == 0 {
		return strings.Join(strings.Fields(textContent(n)), " ")
	}

	parts := make([]string, 0, len(words))
	for _, w := range words {
		if t := strings.TrimSpace(textContent(w)); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// nodeBBox reads the bbox property from an element's title attribute
func nodeBBox(n *html.Node) *model.BBox {
	props := parseTitle(getAttr(n, "title"))
	fields := strings.Fields(props["bbox"])
	if len(fields) != 4 {
		return nil
	}

	var coords [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		coords[i] = v
	}

	bbox := model.NewBBox(coords[0], coords[1], coords[2], coords[3])
	if bbox.Validate() != nil {
		return nil
	}
	return &bbox
}

// parseTitle splits an hOCR title attribute, e.g.
// "bbox 36 92 618 361; x_wconf 90", into its properties.
func parseTitle(title string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(title, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, " ")
		props[key] = strings.TrimSpace(value)
	}
	return props
}

// findByClass returns the outermost descendants of n (n excluded) that
// carry any of the classes, in document order.
func findByClass(n *html.Node, classes ...string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && hasClass(c, classes...) {
				found = append(found, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

// hasClass checks the space separated class attribute
func hasClass(n *html.Node, classes ...string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		for _, want := range classes {
			if c == want {
				return true
			}
		}
	}
	return false
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent extracts all text content from a node and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
