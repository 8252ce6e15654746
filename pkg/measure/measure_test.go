package measure_test

import (
	"reflect"
	"testing"

	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/layout"
	"github.com/go-slate/slate/pkg/measure"
	"github.com/go-slate/slate/pkg/text"
	"github.com/go-slate/slate/pkg/widgets"
)

// cell width 10, line height 20, ascent 12 for size-16 fonts.
var testMeasurer = text.FixedMeasurer{CellWidth: 10, LineHeightFactor: 1.25, AscentFactor: 0.75}
var testFont = text.Font{Family: "test", Size: 16}

func fixedBox(id widgets.WidgetID, w, h float64) widgets.Widget {
	return widgets.Rect{
		Info:  widgets.Info{ID: id},
		Style: &widgets.BoxStyle{MinWidth: w, MinHeight: h},
	}
}

func TestTree_RowAggregation(t *testing.T) {
	// Three 10x10 boxes in a row with gap 2 and no padding: width
	// 10+10+10+2+2 = 34, height 10.
	root := widgets.Flex{
		Info:      widgets.Info{ID: 1},
		Direction: widgets.AxisHorizontal,
		Gap:       2,
		Children: []widgets.Widget{
			fixedBox(2, 10, 10),
			fixedBox(3, 10, 10),
			fixedBox(4, 10, 10),
		},
	}

	input, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if input.ContentSize.Width != 34 {
		t.Errorf("width = %v, want 34", input.ContentSize.Width)
	}
	if input.ContentSize.Height != 10 {
		t.Errorf("height = %v, want 10", input.ContentSize.Height)
	}
	if input.Strategy != layout.StrategyFlex || input.Flex == nil {
		t.Fatal("expected flex strategy with params")
	}
	if input.Flex.Gap != 2 || input.Flex.Direction != widgets.AxisHorizontal {
		t.Errorf("flex params = %+v", input.Flex)
	}
	if len(input.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(input.Children))
	}
}

func TestTree_ColumnAggregation(t *testing.T) {
	root := widgets.Flex{
		Info: widgets.Info{ID: 1},
		Gap:  4,
		Children: []widgets.Widget{
			fixedBox(2, 30, 10),
			fixedBox(3, 20, 15),
		},
	}

	input, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	// Column: width = max(30, 20), height = 10+15+4.
	if input.ContentSize.Width != 30 || input.ContentSize.Height != 29 {
		t.Errorf("size = %+v, want {30 29}", input.ContentSize)
	}
}

func TestTree_PaddingAndMinimumFloor(t *testing.T) {
	root := widgets.Flex{
		Info: widgets.Info{ID: 1},
		Style: &widgets.BoxStyle{
			Padding:   graphics.EdgeInsetsAll(5),
			MinWidth:  100,
			MinHeight: 8,
		},
		Children: []widgets.Widget{fixedBox(2, 10, 10)},
	}

	input, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	// Content 10x10 + padding 10 each axis = 20x20; width floored at 100.
	if input.ContentSize.Width != 100 || input.ContentSize.Height != 20 {
		t.Errorf("size = %+v, want {100 20}", input.ContentSize)
	}
}

func TestTree_GridAggregation(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		children int
		colGap   float64
		rowGap   float64
		want     graphics.Size
	}{
		{
			// 5 children in 2 columns: 3 rows, cell 10x10.
			// width = 10*2 + 3*1 = 23, height = 10*3 + 2*2 = 34.
			name: "two columns three rows", columns: 2, children: 5, colGap: 3, rowGap: 2,
			want: graphics.Size{Width: 23, Height: 34},
		},
		{
			// Zero columns defaults to 1: one column, 2 rows.
			name: "zero columns defaults to one", columns: 0, children: 2, rowGap: 4,
			want: graphics.Size{Width: 10, Height: 24},
		},
		{
			name: "no children", columns: 3, children: 0,
			want: graphics.Size{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := widgets.Grid{
				Info:      widgets.Info{ID: 1},
				Columns:   tt.columns,
				ColumnGap: tt.colGap,
				RowGap:    tt.rowGap,
			}
			for i := 0; i < tt.children; i++ {
				grid.Children = append(grid.Children, fixedBox(widgets.WidgetID(i+2), 10, 10))
			}

			input, _, err := measure.Tree(grid, testMeasurer)
			if err != nil {
				t.Fatalf("Tree: %v", err)
			}
			if input.ContentSize != tt.want {
				t.Errorf("size = %+v, want %+v", input.ContentSize, tt.want)
			}
			if input.Strategy != layout.StrategyGrid || input.Grid == nil {
				t.Fatal("expected grid strategy with params")
			}
			if input.Grid.Columns < 1 {
				t.Errorf("columns = %d, want >= 1", input.Grid.Columns)
			}
		})
	}
}

func TestTree_GridCellIsMaxOfChildren(t *testing.T) {
	grid := widgets.Grid{
		Info:    widgets.Info{ID: 1},
		Columns: 2,
		Children: []widgets.Widget{
			fixedBox(2, 5, 8),
			fixedBox(3, 20, 4),
			fixedBox(4, 10, 12),
		},
	}

	input, _, err := measure.Tree(grid, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	// Cell = 20x12, 2 columns, 2 rows, no gaps.
	if input.ContentSize.Width != 40 || input.ContentSize.Height != 24 {
		t.Errorf("size = %+v, want {40 24}", input.ContentSize)
	}
}

func TestTree_TextSingleLine(t *testing.T) {
	root := widgets.Text{
		Info:    widgets.Info{ID: 7},
		Content: "hello",
		Font:    testFont,
	}

	input, measured, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if input.ContentSize.Width != 50 || input.ContentSize.Height != 20 {
		t.Errorf("size = %+v, want {50 20}", input.ContentSize)
	}

	updated, ok := measured.(widgets.Text)
	if !ok {
		t.Fatalf("measured widget is %T, want widgets.Text", measured)
	}
	if updated.Layout == nil {
		t.Fatal("expected resolved layout")
	}
	if len(updated.Layout.Lines) != 1 || updated.Layout.Lines[0].Text != "hello" {
		t.Errorf("lines = %+v", updated.Layout.Lines)
	}
	// The input tree keeps its nil layout: measurement returns a new value.
	if root.Layout != nil {
		t.Error("original tree was mutated")
	}
}

func TestTree_TextWrapped(t *testing.T) {
	root := widgets.Text{
		Info:      widgets.Info{ID: 7},
		Content:   "The quick brown fox jumps",
		Font:      testFont,
		WrapWidth: 90,
	}

	input, measured, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	updated := measured.(widgets.Text)
	if len(updated.Layout.Lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(updated.Layout.Lines))
	}
	// Block: widest line 90, 3 lines of height 20.
	if input.ContentSize.Width != 90 || input.ContentSize.Height != 60 {
		t.Errorf("size = %+v, want {90 60}", input.ContentSize)
	}
}

func TestTree_Spacer(t *testing.T) {
	input, _, err := measure.Tree(widgets.Spacer{Info: widgets.Info{ID: 1}, Width: 7, Height: 9}, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if input.ContentSize.Width != 7 || input.ContentSize.Height != 9 {
		t.Errorf("size = %+v, want {7 9}", input.ContentSize)
	}
	if input.Constraints.Mode != layout.SizingFixed {
		t.Error("spacer should be fixed-size")
	}
}

func TestTree_ScrollViewportAndContent(t *testing.T) {
	child := fixedBox(2, 10, 10)
	root := widgets.Scroll{
		Info:          widgets.Info{ID: 1},
		Style:         &widgets.BoxStyle{MinWidth: 100, MinHeight: 50},
		State:         &widgets.ScrollState{},
		ContentWidth:  100,
		ContentHeight: 400,
		Child:         child,
	}

	input, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	// Reported size is the viewport, not the scrollable extent.
	if input.ContentSize.Width != 100 || input.ContentSize.Height != 50 {
		t.Errorf("viewport = %+v, want {100 50}", input.ContentSize)
	}
	if input.Constraints.Mode != layout.SizingFixed {
		t.Error("scroll viewport should be fixed-size")
	}
	if len(input.Children) != 1 {
		t.Fatal("expected one child input")
	}
	// The child is laid out against the declared content extent.
	childInput := input.Children[0]
	if childInput.Constraints.MinWidth != 100 || childInput.Constraints.MinHeight != 400 {
		t.Errorf("child constraints = %+v, want min 100x400", childInput.Constraints)
	}
}

func TestTree_ScrollViewportFallsBackToDeclaredContent(t *testing.T) {
	root := widgets.Scroll{
		Info:          widgets.Info{ID: 1},
		State:         &widgets.ScrollState{},
		ContentWidth:  80,
		ContentHeight: 300,
	}

	input, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if input.ContentSize.Width != 80 || input.ContentSize.Height != 300 {
		t.Errorf("viewport = %+v, want {80 300}", input.ContentSize)
	}
}

func TestTree_Idempotent(t *testing.T) {
	root := widgets.Flex{
		Info: widgets.Info{ID: 1},
		Gap:  3,
		Children: []widgets.Widget{
			widgets.Text{Info: widgets.Info{ID: 2}, Content: "The quick brown fox jumps", Font: testFont, WrapWidth: 90},
			fixedBox(3, 25, 10),
			widgets.Spacer{Info: widgets.Info{ID: 4}, Width: 5, Height: 5},
		},
	}

	first, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("measuring the same tree twice produced different inputs")
	}
}

func TestTree_ConstraintsCarryStyle(t *testing.T) {
	root := widgets.Rect{
		Info: widgets.Info{ID: 1},
		Style: &widgets.BoxStyle{
			MinWidth: 10, MaxWidth: 50, MinHeight: 5, MaxHeight: 40,
			Margin:  graphics.EdgeInsetsAll(2),
			Padding: graphics.EdgeInsetsAll(3),
		},
	}

	input, _, err := measure.Tree(root, testMeasurer)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	c := input.Constraints
	if c.MinWidth != 10 || c.MaxWidth != 50 || c.MinHeight != 5 || c.MaxHeight != 40 {
		t.Errorf("constraints = %+v", c)
	}
	if c.Margin != graphics.EdgeInsetsAll(2) || c.Padding != graphics.EdgeInsetsAll(3) {
		t.Errorf("insets = %+v", c)
	}
}

func TestIntrinsicSize(t *testing.T) {
	root := widgets.Flex{
		Info:      widgets.Info{ID: 1},
		Direction: widgets.AxisHorizontal,
		Gap:       2,
		Children: []widgets.Widget{
			fixedBox(2, 10, 10),
			fixedBox(3, 10, 10),
			fixedBox(4, 10, 10),
		},
	}

	size, err := measure.IntrinsicSize(root, testMeasurer)
	if err != nil {
		t.Fatalf("IntrinsicSize: %v", err)
	}
	if size.Width != 34 || size.Height != 10 {
		t.Errorf("size = %+v, want {34 10}", size)
	}
}
