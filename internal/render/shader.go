package render

import (
	"github.com/idursun/clgl/internal/screen"
	"github.com/rivo/uniseg"
)

// Shader computes the value of the cell sampled at (x, y).
// current is the cell's value before the shading pass and buf is the
// pre-pass snapshot, which must be treated as read-only.
// Returning false leaves the target cell untouched.
type Shader func(x, y int, current screen.Cell, buf *screen.Buffer) (screen.Cell, bool)

// Pure returns a shader that always yields c.
func Pure(c screen.Cell) Shader {
	return func(int, int, screen.Cell, *screen.Buffer) (screen.Cell, bool) {
		return c, true
	}
}

type patternConfig struct {
	repeatX bool
	repeatY bool
}

// PatternOption configures Pattern and PatternTokens.
type PatternOption func(*patternConfig)

// RepeatX controls horizontal tiling. Enabled by default.
func RepeatX(on bool) PatternOption {
	return func(c *patternConfig) { c.repeatX = on }
}

// RepeatY controls vertical tiling. Enabled by default.
func RepeatY(on bool) PatternOption {
	return func(c *patternConfig) { c.repeatY = on }
}

// Pattern returns a shader that tiles rows, each split into grapheme clusters.
//
//	Pattern([]string{"01", "10"})
//
// yields a checkerboard of 0 and 1.
func Pattern(rows []string, opts ...PatternOption) Shader {
	cells := make([][]screen.Cell, len(rows))
	for i, row := range rows {
		cells[i] = graphemes(row)
	}
	return pattern(cells, opts)
}

// PatternTokens is like Pattern but every element of a row is one cell,
// which allows multi-character tokens.
func PatternTokens(rows [][]string, opts ...PatternOption) Shader {
	cells := make([][]screen.Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]screen.Cell, len(row))
		for j, token := range row {
			cells[i][j] = screen.Cell(token)
		}
	}
	return pattern(cells, opts)
}

func pattern(rows [][]screen.Cell, opts []PatternOption) Shader {
	cfg := patternConfig{repeatX: true, repeatY: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	height := len(rows)
	width := 1
	for _, row := range rows {
		width = max(width, len(row))
	}

	return func(x, y int, _ screen.Cell, _ *screen.Buffer) (screen.Cell, bool) {
		if height == 0 {
			return "", false
		}
		j, ok := wrap(y, height, cfg.repeatY)
		if !ok {
			return "", false
		}
		i, ok := wrap(x, width, cfg.repeatX)
		if !ok {
			return "", false
		}
		row := rows[j]
		// short rows are padded with empty cells up to the pattern width
		if i >= len(row) {
			return "", true
		}
		return row[i], true
	}
}

// wrap maps v into [0, size) when repeating, or reports false when v falls
// outside and repetition is off.
func wrap(v, size int, repeat bool) (int, bool) {
	if v >= 0 && v < size {
		return v, true
	}
	if !repeat {
		return 0, false
	}
	v %= size
	if v < 0 {
		v += size
	}
	return v, true
}

func graphemes(s string) []screen.Cell {
	var cells []screen.Cell
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cells = append(cells, screen.Cell(g.Str()))
	}
	return cells
}
