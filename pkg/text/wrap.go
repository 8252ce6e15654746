package text

import "strings"

// wrapWithMeasure performs greedy word wrapping, delegating width
// computation to the measure callback. Explicit newlines always break;
// a word wider than maxWidth occupies a line of its own rather than
// being split mid-word.
func wrapWithMeasure(content string, maxWidth float64, measure func(string) (LineMetrics, error)) (Layout, error) {
	base, err := measure("")
	if err != nil {
		return Layout{}, err
	}

	var lines []Line
	for _, paragraph := range strings.Split(content, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, Line{})
			continue
		}

		current := words[0]
		metrics, err := measure(current)
		if err != nil {
			return Layout{}, err
		}
		for _, word := range words[1:] {
			candidate := current + " " + word
			candidateMetrics, err := measure(candidate)
			if err != nil {
				return Layout{}, err
			}
			if candidateMetrics.Width <= maxWidth {
				current = candidate
				metrics = candidateMetrics
				continue
			}
			lines = append(lines, Line{Text: current, Width: metrics.Width})
			current = word
			if metrics, err = measure(current); err != nil {
				return Layout{}, err
			}
		}
		lines = append(lines, Line{Text: current, Width: metrics.Width})
	}

	layout := Layout{
		Lines:      lines,
		LineHeight: base.LineHeight,
		Ascent:     base.Ascent,
		Height:     base.LineHeight * float64(len(lines)),
	}
	for _, line := range lines {
		if line.Width > layout.MaxWidth {
			layout.MaxWidth = line.Width
		}
	}
	return layout, nil
}
