package scripting

import (
	"testing"

	"github.com/idursun/clgl/internal/render"
	"github.com/idursun/clgl/internal/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Compile(src)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestScript_Checkerboard(t *testing.T) {
	s := compile(t, `
function shade(x, y, cell)
  if (x + y) % 2 == 0 then
    return "#"
  end
  return nil
end`)
	buf := screen.NewBuffer(3, 2)
	render.Shade(buf, 0, 0, 3, 2, s.Shader(), false)
	assert.Equal(t, []string{"#.#", ".#."}, buf.Lines("."))
	assert.NoError(t, s.Err())
}

func TestScript_ReadsSnapshot(t *testing.T) {
	s := compile(t, `function shade(x, y, cell) return buffer.at(x - 1, y) end`)
	buf := screen.NewBuffer(5, 1)
	buf.Set(0, 0, "a")
	buf.Set(1, 0, "b")
	render.Shade(buf, 1, 0, 4, 1, s.Shader(), true)
	assert.Equal(t, []string{"aab.."}, buf.Lines("."))
}

func TestScript_BufferSize(t *testing.T) {
	s := compile(t, `function shade() return buffer.width() .. "x" .. buffer.height() end`)
	buf := screen.NewBuffer(3, 2)
	render.Shade(buf, 0, 0, 1, 1, s.Shader(), false)
	assert.Equal(t, screen.Cell("3x2"), buf.At(0, 0))
}

func TestScript_NumbersBecomeCells(t *testing.T) {
	s := compile(t, `function shade(x) return x end`)
	buf := screen.NewBuffer(3, 1)
	render.Shade(buf, 0, 0, 3, 1, s.Shader(), false)
	assert.Equal(t, []string{"012"}, buf.Lines("."))
}

func TestScript_CurrentCell(t *testing.T) {
	s := compile(t, `function shade(x, y, cell) return cell .. "!" end`)
	buf := screen.NewBuffer(2, 1)
	buf.Set(0, 0, "a")
	render.Shade(buf, 0, 0, 2, 1, s.Shader(), false)
	assert.Equal(t, screen.Cell("a!"), buf.At(0, 0))
	assert.Equal(t, screen.Cell("!"), buf.At(1, 0))
}

func TestScript_RuntimeErrorLeavesCell(t *testing.T) {
	s := compile(t, `function shade() error("boom") end`)
	buf := screen.NewBuffer(2, 1)
	buf.Set(0, 0, "a")
	render.Shade(buf, 0, 0, 2, 1, s.Shader(), false)
	assert.Equal(t, []string{"a."}, buf.Lines("."))
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "boom")
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(`function shade(`)
	assert.Error(t, err)

	_, err = Compile(`x = 1`)
	assert.ErrorIs(t, err, ErrNoEntryPoint)

	assert.Panics(t, func() { MustCompile(`shade = 3`) })
}
