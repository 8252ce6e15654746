package measure

import (
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/text"
	"github.com/go-slate/slate/pkg/widgets"
)

// IntrinsicSize computes the minimum size that fits the widget's content
// unconstrained, using the same aggregation rules as Tree but without
// building a layout-input tree or touching the external engine. Useful for
// auto-sizing and centering decisions.
func IntrinsicSize(w widgets.Widget, m text.Measurer) (graphics.Size, error) {
	input, _, err := measureNode(w, m)
	if err != nil {
		return graphics.Size{}, err
	}
	return input.ContentSize, nil
}
