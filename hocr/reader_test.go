package hocr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePage = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
 <head><title></title>
  <meta name='ocr-system' content='tesseract 5.3.0' />
 </head>
 <body>
  <div class='ocr_page' id='page_1' title='image "poster.png"; bbox 0 0 800 1000; ppageno 0'>
   <div class='ocr_carea' id='block_1_1' title="bbox 150 40 650 120">
    <p class='ocr_par' id='par_1_1' lang='eng' title="bbox 150 40 650 120">
     <span class='ocr_line' id='line_1_1' title="bbox 150 40 650 120; baseline 0 -10; x_size 80">
      <span class='ocrx_word' id='word_1_1' title='bbox 150 40 380 120; x_wconf 95'>JAZZ</span>
      <span class='ocrx_word' id='word_1_2' title='bbox 400 40 650 120; x_wconf 94'>NIGHT</span>
     </span>
    </p>
   </div>
   <div class='ocr_carea' id='block_1_2' title="bbox 100 200 700 300">
    <p class='ocr_par' id='par_1_2' lang='eng' title="bbox 100 200 700 300">
     <span class='ocr_line' id='line_1_2' title="bbox 100 200 700 240; baseline 0 -8">
      <span class='ocrx_word' title='bbox 100 200 300 240'>Saturday,</span>
      <span class='ocrx_word' title='bbox 320 200 500 240'>March</span>
      <span class='ocrx_word' title='bbox 520 200 560 240'>3</span>
     </span>
     <span class='ocr_line' id='line_1_3' title="bbox 100 260 700 300; baseline 0 -8">
      <span class='ocrx_word' title='bbox 100 260 200 300'>7:00</span>
      <span class='ocrx_word' title='bbox 220 260 300 300'>PM</span>
     </span>
    </p>
   </div>
   <div class='ocr_carea' id='block_1_3' title="bbox 10 10 20 20">
    <p class='ocr_par'><span class='ocr_line' title="bbox 10 10 20 20"><span class='ocrx_word'> </span></span></p>
   </div>
  </div>
 </body>
</html>`

func TestParse(t *testing.T) {
	blocks, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}

	title := blocks[0]
	if title.Text != "JAZZ NIGHT" {
		t.Errorf("blocks[0].Text = %q, want %q", title.Text, "JAZZ NIGHT")
	}
	if title.BoundingBox == nil || title.BoundingBox.String() != "[150,40 650,120]" {
		t.Errorf("blocks[0].BoundingBox = %v", title.BoundingBox)
	}

	when := blocks[1]
	if when.Text != "Saturday, March 3\n7:00 PM" {
		t.Errorf("blocks[1].Text = %q", when.Text)
	}
	if len(when.Lines) != 2 {
		t.Fatalf("len(blocks[1].Lines) = %d, want 2", len(when.Lines))
	}
	if when.Lines[1].Text != "7:00 PM" {
		t.Errorf("Lines[1].Text = %q, want %q", when.Lines[1].Text, "7:00 PM")
	}
	if when.Lines[1].BoundingBox == nil || when.Lines[1].BoundingBox.Top != 260 {
		t.Errorf("Lines[1].BoundingBox = %v", when.Lines[1].BoundingBox)
	}
}

func TestParse_ParagraphFallback(t *testing.T) {
	page := `<html><body>
<p class='ocr_par' title='bbox 0 0 100 50'><span class='ocr_line' title='bbox 0 0 100 20'>Book   Fair</span></p>
<p class='ocr_par' title='bbox 0 80 100 100'><span class='ocr_line'>Town Hall</span></p>
</body></html>`

	blocks, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Text != "Book Fair" {
		t.Errorf("blocks[0].Text = %q, want %q", blocks[0].Text, "Book Fair")
	}
	if blocks[1].Lines[0].BoundingBox != nil {
		t.Error("a line without a title should have no bounding box")
	}
}

func TestParse_LineFallbackAndUnion(t *testing.T) {
	page := `<html><body><div>
<span class='ocr_line' title='bbox 5 5 50 25'>Doors open</span>
<span class='ocr_header' title='bbox 5 40 80 60'>Free entry</span>
</div></body></html>`

	blocks, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[1].Text != "Free entry" {
		t.Errorf("blocks[1].Text = %q", blocks[1].Text)
	}
	if blocks[1].BoundingBox == nil || blocks[1].BoundingBox.Left != 5 {
		t.Errorf("blocks[1].BoundingBox = %v", blocks[1].BoundingBox)
	}
}

func TestParse_AreaWithoutBBoxUsesLineUnion(t *testing.T) {
	page := `<html><body>
<div class='ocr_carea'>
 <span class='ocr_line' title='bbox 10 10 110 30'>Line one</span>
 <span class='ocr_line' title='bbox 20 40 90 60'>Line two</span>
</div></body></html>`

	blocks, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	if got := blocks[0].BoundingBox; got == nil || got.String() != "[10,10 110,60]" {
		t.Errorf("BoundingBox = %v, want [10,10 110,60]", got)
	}
}

func TestParse_Empty(t *testing.T) {
	blocks, err := Parse(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("len(blocks) = %d, want 0", len(blocks))
	}
}

func TestParseTitle(t *testing.T) {
	props := parseTitle("bbox 36 92 618 361; baseline 0 -6;x_wconf 90")
	if props["bbox"] != "36 92 618 361" {
		t.Errorf("bbox = %q", props["bbox"])
	}
	if props["baseline"] != "0 -6" {
		t.Errorf("baseline = %q", props["baseline"])
	}
	if props["x_wconf"] != "90" {
		t.Errorf("x_wconf = %q", props["x_wconf"])
	}
}

func TestParse_InvalidBBoxIgnored(t *testing.T) {
	page := `<html><body><div class='ocr_carea' title='bbox 100 100 50 50'>
<span class='ocr_line' title='bbox 1 2 x 4'>Odd box</span></div></body></html>`

	blocks, err := Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(blocks) != 1 || blocks[0].BoundingBox != nil {
		t.Errorf("blocks = %+v, want one block without geometry", blocks)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.hocr")
	if err := os.WriteFile(path, []byte(samplePage), 0o644); err != nil {
		t.Fatal(err)
	}

	blocks, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(blocks) != 2 {
		t.Errorf("len(blocks) = %d, want 2", len(blocks))
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.hocr")); err == nil {
		t.Error("Open() of a missing file should fail")
	}
}
