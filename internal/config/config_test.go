package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idursun/clgl/internal/config"
	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/screen"
	"github.com/idursun/clgl/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	root := config.Demo().Build(scene.WithWidth(34))
	require.Equal(t, 10, root.Height())
	assert.Len(t, root.Nodes(), 4)

	assert.Equal(t, []string{
		`----------------------------------`,
		`--##############################--`,
		`--###\/\/\/\/\/\/\/\/\/\/\/\/###--`,
		`--###/\/\/----------\/\/\/\/\###--`,
		`--###\/\/\    hello,/\/\/\/\/###--`,
		`--###/\/\/    world!\/\/\/\/\###--`,
		`--###\/\/\/\/\/\/\/\/\/\/\/\/###--`,
		`--###/\/\/\/\/\/\/\/\/\/\/\/\###--`,
		`--##############################--`,
		`----------------------------------`,
	}, test.FrameLines(t, root))
}

func TestDemo_SwapTextShader(t *testing.T) {
	root := config.Demo().Build(scene.WithWidth(34))
	text := root.Find("text")
	require.NotNil(t, text)

	updated, err := config.Decode(`
[[node]]
name = "text"
shader = { pattern = ["", "    HELLO,", "    WORLD!"], repeat_x = false, repeat_y = false }
`)
	require.NoError(t, err)
	text.Shader = updated.Nodes()[0].Shader

	lines := test.FrameLines(t, root)
	assert.Contains(t, lines[4], "HELLO,")
	assert.Contains(t, lines[5], "WORLD!")
}

func TestDecode_Defaults(t *testing.T) {
	s, err := config.Decode(`
width = 5
height = 2

[[node]]
shader = { pure = "x" }
`)
	require.NoError(t, err)

	root := s.Build()
	assert.Equal(t, screen.Cell(" "), root.Background)

	n := root.Nodes()[0]
	assert.True(t, n.Visible)
	assert.Equal(t, 1, n.Width)
	assert.Equal(t, 1, n.Height)
	assert.False(t, n.FixedOrigin)
	assert.Equal(t, "x    \n     ", test.Frame(t, root))
}

func TestDecode_Children(t *testing.T) {
	s, err := config.Decode(`
width = 4
height = 2
background = "."

[[node]]
name = "parent"
width = 4
height = 2
shader = { pure = "p" }

  [[node.node]]
  name = "child"
  left = 1
  top = 1
  width = 2
  shader = { tokens = [["a", "b"]] }

  [[node.node]]
  name = "skipped"
  shader = { pure = "s" }
  visible = false
`)
	require.NoError(t, err)
	root := s.Build()

	parent := root.Find("parent")
	require.NotNil(t, parent)
	assert.Equal(t, 2, parent.NumChildren())
	assert.Same(t, parent, root.Find("child").Parent())
	assert.Equal(t, []string{"pppp", "pabp"}, test.FrameLines(t, root))
}

func TestDecode_Effects(t *testing.T) {
	s, err := config.Decode(`
width = 3
height = 2
background = "."

[[node]]
shader = { pure = "#" }

[[effect]]
drop_shadow = "o"

[[effect]]
replace = ["o", "*"]
`)
	require.NoError(t, err)
	root := s.Build()
	assert.Len(t, root.Effects(), 2)
	assert.Equal(t, []string{"#..", ".*."}, test.FrameLines(t, root))
}

func TestDecode_OptionsOverrideFile(t *testing.T) {
	s, err := config.Decode(`width = 5
height = 5
background = "-"`)
	require.NoError(t, err)
	root := s.Build(scene.WithWidth(2), scene.WithBackground("+"))
	assert.Equal(t, 2, root.Width())
	assert.Equal(t, 5, root.Height())
	assert.Equal(t, screen.Cell("+"), root.Background)
}

func TestDecode_LuaShader(t *testing.T) {
	s, err := config.Decode(`
width = 4
height = 1
background = "."

[[node]]
width = 4
shader = { lua = 'function shade(x) if x % 2 == 1 then return "o" end end' }
`)
	require.NoError(t, err)
	assert.Equal(t, ".o.o", test.Frame(t, s.Build()))
}

func TestDecode_BuildReturnsFreshNodes(t *testing.T) {
	s := config.Demo()
	a, b := s.Build(), s.Build()
	assert.NotSame(t, a.Find("box"), b.Find("box"))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
		want    string
	}{
		{"syntax", `width = `, false, "parse scene"},
		{"unknown key", `colour = "red"`, true, "colour"},
		{"negative root width", `width = -1`, true, "width must not be negative"},
		{"negative node height", "[[node]]\nname = \"n\"\nheight = -2", true, `node[0] (n): height`},
		{"nested negative width", "[[node]]\n[[node.node]]\nwidth = -1", true, "node[0].node[0]"},
		{"no shader kind", "[[node]]\nshader = {}", true, "exactly one"},
		{"two shader kinds", "[[node]]\nshader = { pure = \"a\", pattern = [\"b\"] }", true, "exactly one"},
		{"repeat on pure", "[[node]]\nshader = { pure = \"a\", repeat_x = false }", true, "only apply to patterns"},
		{"lua without shade", "[[node]]\nshader = { lua = \"x = 1\" }", true, "shade(x, y, cell)"},
		{"lua syntax", "[[node]]\nshader = { lua = \"function shade(\" }", true, "lua"},
		{"repeat on lua", "[[node]]\nshader = { lua = \"function shade() end\", repeat_y = true }", true, "only apply to patterns"},
		{"empty effect", "[[effect]]", true, "effect[0]"},
		{"bad replace", "[[effect]]\nreplace = [\"a\"]", true, "pair"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Decode(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.invalid, isInvalid(err))
		})
	}
}

func isInvalid(err error) bool {
	return errors.Is(err, config.ErrInvalidScene)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 3\nheight = 1\n"), 0o644))

	s, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Build().Width())

	_, err = config.LoadFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("width = -3"), 0o644))
	_, err = config.LoadFile(path)
	assert.ErrorIs(t, err, config.ErrInvalidScene)
}

func TestLoad(t *testing.T) {
	s, err := config.Load(strings.NewReader("height = 4\nwidth = 2"))
	require.NoError(t, err)
	assert.Equal(t, 4, *s.File().Height)
}
