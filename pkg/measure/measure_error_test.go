package measure_test

import (
	stderrors "errors"
	"testing"

	slateerrors "github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/measure"
	"github.com/go-slate/slate/pkg/text"
	"github.com/go-slate/slate/pkg/widgets"
)

var errNoFont = stderrors.New("font family \"missing\" not registered")

// failingMeasurer rejects every measurement.
type failingMeasurer struct{}

func (failingMeasurer) MeasureLine(string, text.Font) (text.LineMetrics, error) {
	return text.LineMetrics{}, errNoFont
}

func (failingMeasurer) WrapLines(string, text.Font, float64) (text.Layout, error) {
	return text.Layout{}, errNoFont
}

type discardHandler struct{}

func (discardHandler) HandleError(*slateerrors.SlateError) {}
func (discardHandler) HandlePanic(*slateerrors.PanicError) {}

func TestTree_MeasurerErrorPropagates(t *testing.T) {
	slateerrors.SetHandler(discardHandler{})
	defer slateerrors.SetHandler(nil)

	root := widgets.Flex{
		Info: widgets.Info{ID: 1},
		Children: []widgets.Widget{
			widgets.Text{Info: widgets.Info{ID: 2}, Content: "x"},
		},
	}

	_, _, err := measure.Tree(root, failingMeasurer{})
	if err == nil {
		t.Fatal("expected error")
	}
	var slateErr *slateerrors.SlateError
	if !stderrors.As(err, &slateErr) {
		t.Fatalf("error type = %T, want *SlateError", err)
	}
	if slateErr.Kind != slateerrors.KindMeasure {
		t.Errorf("kind = %v, want measure", slateErr.Kind)
	}
	if slateErr.Widget != 2 {
		t.Errorf("widget = %d, want 2", slateErr.Widget)
	}
	if !stderrors.Is(err, errNoFont) {
		t.Error("underlying error lost")
	}
}
