package render

import (
	"testing"

	"github.com/idursun/clgl/internal/screen"
	"github.com/stretchr/testify/assert"
)

func sample(s Shader, x, y int) (screen.Cell, bool) {
	return s(x, y, "", nil)
}

func TestPure(t *testing.T) {
	s := Pure("#")
	for _, p := range [][2]int{{0, 0}, {7, 3}, {-2, 100}} {
		c, ok := s(p[0], p[1], "x", screen.NewBuffer(1, 1))
		assert.True(t, ok)
		assert.Equal(t, screen.Cell("#"), c)
	}
}

func TestPattern_SingleRowAlternates(t *testing.T) {
	s := Pattern([]string{"01"})
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			c, ok := sample(s, x, y)
			assert.True(t, ok)
			want := screen.Cell("0")
			if x%2 == 1 {
				want = "1"
			}
			assert.Equal(t, want, c, "at (%d, %d)", x, y)
		}
	}
}

func TestPattern_Checkerboard(t *testing.T) {
	s := Pattern([]string{"01", "10"})
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c, ok := sample(s, x, y)
			assert.True(t, ok)
			want := screen.Cell("0")
			if (x+y)%2 == 1 {
				want = "1"
			}
			assert.Equal(t, want, c, "at (%d, %d)", x, y)
		}
	}
}

func TestPattern_NoRepeat(t *testing.T) {
	s := Pattern([]string{"ab", "cd"}, RepeatX(false), RepeatY(false))

	tests := []struct {
		name string
		x, y int
		want screen.Cell
		ok   bool
	}{
		{"inside", 1, 1, "d", true},
		{"past width", 2, 0, "", false},
		{"past height", 0, 2, "", false},
		{"past both", 5, 5, "", false},
		{"negative", -1, 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := sample(s, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestPattern_RepeatOneAxis(t *testing.T) {
	s := Pattern([]string{"ab"}, RepeatY(false))
	c, ok := sample(s, 3, 0)
	assert.True(t, ok)
	assert.Equal(t, screen.Cell("b"), c)

	_, ok = sample(s, 0, 1)
	assert.False(t, ok)

	s = Pattern([]string{"ab", "cd"}, RepeatX(false))
	c, ok = sample(s, 1, 3)
	assert.True(t, ok)
	assert.Equal(t, screen.Cell("d"), c)

	_, ok = sample(s, 2, 0)
	assert.False(t, ok)
}

func TestPattern_ShortRowYieldsEmptyCell(t *testing.T) {
	s := Pattern([]string{"", "    hi"}, RepeatX(false), RepeatY(false))

	c, ok := sample(s, 3, 0)
	assert.True(t, ok)
	assert.True(t, c.Empty())

	c, ok = sample(s, 5, 1)
	assert.True(t, ok)
	assert.Equal(t, screen.Cell("i"), c)
}

func TestPattern_ShortRowRepeatsOverPatternWidth(t *testing.T) {
	s := Pattern([]string{"abc", "d"})
	c, ok := sample(s, 4, 1)
	assert.True(t, ok)
	assert.True(t, c.Empty())

	c, ok = sample(s, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, screen.Cell("d"), c)
}

func TestPattern_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		_, ok := sample(Pattern(nil), 3, 3)
		assert.False(t, ok)
	})
	assert.NotPanics(t, func() {
		c, ok := sample(Pattern([]string{""}), 4, 2)
		assert.True(t, ok)
		assert.True(t, c.Empty())
	})
}

func TestPattern_Graphemes(t *testing.T) {
	s := Pattern([]string{"éx"})
	c, _ := sample(s, 0, 0)
	assert.Equal(t, screen.Cell("é"), c)
	c, _ = sample(s, 1, 0)
	assert.Equal(t, screen.Cell("x"), c)
}

func TestPatternTokens(t *testing.T) {
	s := PatternTokens([][]string{{`\`, "/"}, {"/", `\`}})
	c, _ := sample(s, 0, 0)
	assert.Equal(t, screen.Cell(`\`), c)
	c, _ = sample(s, 3, 0)
	assert.Equal(t, screen.Cell("/"), c)

	s = PatternTokens([][]string{{"ab", "cd"}})
	c, _ = sample(s, 1, 4)
	assert.Equal(t, screen.Cell("cd"), c)
}

func TestPattern_NegativeCoordinatesWrap(t *testing.T) {
	s := Pattern([]string{"012"})
	c, ok := sample(s, -1, -1)
	assert.True(t, ok)
	assert.Equal(t, screen.Cell("2"), c)
}

func TestPattern_IgnoresLaterMutation(t *testing.T) {
	rows := [][]string{{"a"}}
	s := PatternTokens(rows)
	rows[0][0] = "z"
	c, _ := sample(s, 0, 0)
	assert.Equal(t, screen.Cell("a"), c)
}
