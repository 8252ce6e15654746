// Package theme loads named box styles and font references from YAML
// stylesheets, so applications can keep visual constants out of tree
// construction code.
package theme

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/text"
	"github.com/go-slate/slate/pkg/widgets"
)

// SupportedSchema is the stylesheet schema major version this loader accepts.
const SupportedSchema = "v1"

// Stylesheet holds resolved named styles and fonts.
type Stylesheet struct {
	Version string
	styles  map[string]widgets.BoxStyle
	fonts   map[string]text.Font
}

// Style returns the named box style.
func (s *Stylesheet) Style(name string) (widgets.BoxStyle, bool) {
	style, ok := s.styles[name]
	return style, ok
}

// Font returns the named font reference.
func (s *Stylesheet) Font(name string) (text.Font, bool) {
	font, ok := s.fonts[name]
	return font, ok
}

// rawSheet mirrors the YAML document structure.
type rawSheet struct {
	Version string              `yaml:"version"`
	Styles  map[string]rawStyle `yaml:"styles"`
	Fonts   map[string]rawFont  `yaml:"fonts"`
}

type rawStyle struct {
	Background   string     `yaml:"background"`
	BorderColor  string     `yaml:"border-color"`
	BorderWidth  float64    `yaml:"border-width"`
	CornerRadius float64    `yaml:"corner-radius"`
	Padding      insetsNode `yaml:"padding"`
	Margin       insetsNode `yaml:"margin"`
	MinWidth     float64    `yaml:"min-width"`
	MinHeight    float64    `yaml:"min-height"`
	MaxWidth     float64    `yaml:"max-width"`
	MaxHeight    float64    `yaml:"max-height"`
}

type rawFont struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Weight int     `yaml:"weight"`
	Italic bool    `yaml:"italic"`
}

// insetsNode accepts either a single scalar (all edges) or a four-element
// [left, top, right, bottom] sequence.
type insetsNode struct {
	insets graphics.EdgeInsets
}

func (n *insetsNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var all float64
		if err := value.Decode(&all); err != nil {
			return err
		}
		n.insets = graphics.EdgeInsetsAll(all)
		return nil
	case yaml.SequenceNode:
		var edges []float64
		if err := value.Decode(&edges); err != nil {
			return err
		}
		if len(edges) != 4 {
			return fmt.Errorf("insets sequence must have 4 elements, got %d", len(edges))
		}
		n.insets = graphics.EdgeInsetsOnly(edges[0], edges[1], edges[2], edges[3])
		return nil
	default:
		return fmt.Errorf("insets must be a number or a 4-element sequence")
	}
}

// Load parses a YAML stylesheet.
func Load(data []byte) (*Stylesheet, error) {
	var raw rawSheet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, configErr(fmt.Errorf("parse stylesheet: %w", err))
	}

	version := raw.Version
	if version == "" {
		version = SupportedSchema
	}
	if !semver.IsValid(version) {
		return nil, configErr(fmt.Errorf("invalid stylesheet version %q", raw.Version))
	}
	if semver.Major(version) != SupportedSchema {
		return nil, configErr(fmt.Errorf("unsupported stylesheet version %q (want %s.x)", raw.Version, SupportedSchema))
	}

	sheet := &Stylesheet{
		Version: version,
		styles:  make(map[string]widgets.BoxStyle, len(raw.Styles)),
		fonts:   make(map[string]text.Font, len(raw.Fonts)),
	}

	for name, rs := range raw.Styles {
		style, err := resolveStyle(rs)
		if err != nil {
			return nil, configErr(fmt.Errorf("style %q: %w", name, err))
		}
		sheet.styles[name] = style
	}
	for name, rf := range raw.Fonts {
		weight := text.FontWeight(rf.Weight)
		if weight == 0 {
			weight = text.FontWeightNormal
		}
		style := text.FontStyleNormal
		if rf.Italic {
			style = text.FontStyleItalic
		}
		sheet.fonts[name] = text.Font{
			Family: rf.Family,
			Size:   rf.Size,
			Weight: weight,
			Style:  style,
		}
	}
	return sheet, nil
}

// LoadFile reads and parses a YAML stylesheet from disk.
func LoadFile(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErr(fmt.Errorf("read stylesheet: %w", err))
	}
	return Load(data)
}

func resolveStyle(rs rawStyle) (widgets.BoxStyle, error) {
	style := widgets.BoxStyle{
		BorderWidth:  rs.BorderWidth,
		CornerRadius: rs.CornerRadius,
		Padding:      rs.Padding.insets,
		Margin:       rs.Margin.insets,
		MinWidth:     rs.MinWidth,
		MinHeight:    rs.MinHeight,
		MaxWidth:     rs.MaxWidth,
		MaxHeight:    rs.MaxHeight,
	}
	if rs.Background != "" {
		color, err := graphics.ParseColor(rs.Background)
		if err != nil {
			return widgets.BoxStyle{}, err
		}
		style.Background = color
	}
	if rs.BorderColor != "" {
		color, err := graphics.ParseColor(rs.BorderColor)
		if err != nil {
			return widgets.BoxStyle{}, err
		}
		style.BorderColor = color
	}
	return style, nil
}

func configErr(err error) error {
	slateErr := &errors.SlateError{
		Op:   "theme.Load",
		Kind: errors.KindConfig,
		Err:  err,
	}
	errors.Report(slateErr)
	return slateErr
}
