package model

import "fmt"

// Point represents a 2D point in image coordinates
type Point struct {
	X, Y float64
}

// BBox represents an axis-aligned bounding rectangle in image coordinates.
// The origin is the top-left corner of the image and Y grows downwards, so
// Top <= Bottom for every valid box.
type BBox struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// NewBBox creates a bounding box from its edges
func NewBBox(left, top, right, bottom int) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left
func (b BBox) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom - Top
func (b BBox) Height() int {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center, (Left+Right)/2
func (b BBox) CenterX() float64 {
	return float64(b.Left+b.Right) / 2
}

// CenterY returns the vertical center, (Top+Bottom)/2
func (b BBox) CenterY() float64 {
	return float64(b.Top+b.Bottom) / 2
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{X: b.CenterX(), Y: b.CenterY()}
}

// Contains checks if a point is inside the bounding box (edges inclusive)
func (b BBox) Contains(p Point) bool {
	return p.X >= float64(b.Left) && p.X <= float64(b.Right) &&
		p.Y >= float64(b.Top) && p.Y <= float64(b.Bottom)
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// Union returns the smallest box containing both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   minInt(b.Left, other.Left),
		Top:    minInt(b.Top, other.Top),
		Right:  maxInt(b.Right, other.Right),
		Bottom: maxInt(b.Bottom, other.Bottom),
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() int {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Validate reports an error if the box has negative coordinates or
// inverted edges.
func (b BBox) Validate() error {
	if b.Left < 0 || b.Top < 0 || b.Right < 0 || b.Bottom < 0 {
		return fmt.Errorf("bounding box %v has negative coordinates", b)
	}
	if b.Right < b.Left {
		return fmt.Errorf("bounding box %v has right < left", b)
	}
	if b.Bottom < b.Top {
		return fmt.Errorf("bounding box %v has bottom < top", b)
	}
	return nil
}

// String returns a compact representation, e.g. "[10,20 110,60]"
func (b BBox) String() string {
	return fmt.Sprintf("[%d,%d %d,%d]", b.Left, b.Top, b.Right, b.Bottom)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
