package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/eventcap/model"
)

func TestReadingOrder(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock("bottom", 0, 200, 100, 220),
		makeBlock("top right", 200, 0, 300, 20),
		makeBlock("top left", 0, 0, 100, 20),
		makeBlock("middle", 50, 100, 150, 120),
	}

	got := ReadingOrder(blocks)
	want := []int{2, 1, 3, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadingOrder() = %v, want %v", got, want)
	}
}

func TestReadingOrder_Stable(t *testing.T) {
	blocks := []model.TextBlock{
		{Text: "first"},
		{Text: "second"},
		makeBlock("same origin", 0, 0, 10, 10),
	}

	got := ReadingOrder(blocks)
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadingOrder() = %v, want %v", got, want)
	}
}

func TestReadingOrder_Empty(t *testing.T) {
	if got := ReadingOrder(nil); len(got) != 0 {
		t.Errorf("ReadingOrder(nil) = %v, want empty", got)
	}
}

func TestReorderForReading(t *testing.T) {
	blocks := []model.TextBlock{
		makeBlock("second", 0, 50, 100, 70),
		makeBlock("first", 0, 0, 100, 20),
	}

	got := ReorderForReading(blocks)
	if got[0].Text != "first" || got[1].Text != "second" {
		t.Errorf("ReorderForReading() = %q, %q", got[0].Text, got[1].Text)
	}
	if blocks[0].Text != "second" {
		t.Error("ReorderForReading() modified its input")
	}
}
