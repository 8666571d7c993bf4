// Package config loads scene descriptions from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/idursun/clgl/internal/render"
	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/screen"
	"github.com/idursun/clgl/internal/scripting"
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("invalid scene")

//go:embed demo.toml
var demoScene string

// File mirrors the TOML layout of a scene file. Absent fields take the
// scene defaults.
type File struct {
	Width      *int         `toml:"width"`
	Height     *int         `toml:"height"`
	Background *string      `toml:"background"`
	Nodes      []NodeSpec   `toml:"node"`
	Effects    []EffectSpec `toml:"effect"`
}

type NodeSpec struct {
	Name        string      `toml:"name"`
	Visible     *bool       `toml:"visible"`
	Left        int         `toml:"left"`
	Top         int         `toml:"top"`
	Width       *int        `toml:"width"`
	Height      *int        `toml:"height"`
	FixedOrigin bool        `toml:"fixed_origin"`
	Shader      *ShaderSpec `toml:"shader"`
	Children    []NodeSpec  `toml:"node"`
}

// ShaderSpec selects exactly one of Pure, Pattern, Tokens or Lua.
type ShaderSpec struct {
	Pure    *string    `toml:"pure"`
	Pattern []string   `toml:"pattern"`
	Tokens  [][]string `toml:"tokens"`
	Lua     *string    `toml:"lua"`
	RepeatX *bool      `toml:"repeat_x"`
	RepeatY *bool      `toml:"repeat_y"`
}

// EffectSpec selects exactly one of DropShadow or Replace.
type EffectSpec struct {
	DropShadow *string  `toml:"drop_shadow"`
	Replace    []string `toml:"replace"`
}

// Scene is a validated scene file.
type Scene struct {
	file File
}

// Demo returns the built-in demonstration scene.
func Demo() *Scene {
	s, err := Decode(demoScene)
	if err != nil {
		panic(fmt.Sprintf("clgl: embedded demo scene: %v", err))
	}
	return s
}

func Decode(data string) (*Scene, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &Scene{file: f}, nil
}

func Load(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Decode(string(data))
}

func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// File returns the decoded file contents.
func (s *Scene) File() File {
	return s.file
}

// Build creates a root holding fresh nodes for the scene. opts are applied
// after the file's own settings, so they take precedence.
func (s *Scene) Build(opts ...scene.RootOption) *scene.Root {
	var rootOpts []scene.RootOption
	if s.file.Width != nil {
		rootOpts = append(rootOpts, scene.WithWidth(*s.file.Width))
	}
	if s.file.Height != nil {
		rootOpts = append(rootOpts, scene.WithHeight(*s.file.Height))
	}
	if s.file.Background != nil {
		rootOpts = append(rootOpts, scene.WithBackground(screen.Cell(*s.file.Background)))
	}
	rootOpts = append(rootOpts, scene.WithNodes(s.Nodes()...))
	for _, e := range s.file.Effects {
		rootOpts = append(rootOpts, scene.WithEffects(e.shader()))
	}
	return scene.NewRoot(append(rootOpts, opts...)...)
}

// Nodes builds a fresh copy of the top-level nodes.
func (s *Scene) Nodes() []*scene.Node {
	nodes := make([]*scene.Node, len(s.file.Nodes))
	for i, spec := range s.file.Nodes {
		nodes[i] = spec.build()
	}
	return nodes
}

func (spec NodeSpec) build() *scene.Node {
	opts := []scene.NodeOption{
		scene.WithName(spec.Name),
		scene.WithPosition(spec.Left, spec.Top),
		scene.WithFixedOrigin(spec.FixedOrigin),
	}
	if spec.Visible != nil {
		opts = append(opts, scene.WithVisible(*spec.Visible))
	}
	if spec.Width != nil || spec.Height != nil {
		opts = append(opts, scene.WithSize(valueOr(spec.Width, 1), valueOr(spec.Height, 1)))
	}
	if spec.Shader != nil {
		opts = append(opts, scene.WithShader(spec.Shader.shader()))
	}
	for _, child := range spec.Children {
		opts = append(opts, scene.WithChildren(child.build()))
	}
	return scene.NewNode(opts...)
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func (spec ShaderSpec) shader() render.Shader {
	var opts []render.PatternOption
	if spec.RepeatX != nil {
		opts = append(opts, render.RepeatX(*spec.RepeatX))
	}
	if spec.RepeatY != nil {
		opts = append(opts, render.RepeatY(*spec.RepeatY))
	}
	switch {
	case spec.Pure != nil:
		return render.Pure(screen.Cell(*spec.Pure))
	case spec.Tokens != nil:
		return render.PatternTokens(spec.Tokens, opts...)
	case spec.Lua != nil:
		return scripting.MustCompile(*spec.Lua).Shader()
	default:
		return render.Pattern(spec.Pattern, opts...)
	}
}

func (spec EffectSpec) shader() render.Shader {
	if spec.DropShadow != nil {
		return render.DropShadow(screen.Cell(*spec.DropShadow))
	}
	return render.Replace(screen.Cell(spec.Replace[0]), screen.Cell(spec.Replace[1]))
}

func (f File) validate() error {
	if f.Width != nil && *f.Width < 0 {
		return fmt.Errorf("%w: width must not be negative", ErrInvalidScene)
	}
	if f.Height != nil && *f.Height < 0 {
		return fmt.Errorf("%w: height must not be negative", ErrInvalidScene)
	}
	for i, n := range f.Nodes {
		if err := n.validate(fmt.Sprintf("node[%d]", i)); err != nil {
			return err
		}
	}
	for i, e := range f.Effects {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: effect[%d]: %s", ErrInvalidScene, i, err)
		}
	}
	return nil
}

func (spec NodeSpec) validate(path string) error {
	if spec.Name != "" {
		path = fmt.Sprintf("%s (%s)", path, spec.Name)
	}
	if spec.Width != nil && *spec.Width < 0 {
		return fmt.Errorf("%w: %s: width must not be negative", ErrInvalidScene, path)
	}
	if spec.Height != nil && *spec.Height < 0 {
		return fmt.Errorf("%w: %s: height must not be negative", ErrInvalidScene, path)
	}
	if spec.Shader != nil {
		if err := spec.Shader.validate(); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidScene, path, err)
		}
	}
	for i, child := range spec.Children {
		if err := child.validate(fmt.Sprintf("%s.node[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (spec ShaderSpec) validate() error {
	kinds := 0
	if spec.Pure != nil {
		kinds++
	}
	if spec.Pattern != nil {
		kinds++
	}
	if spec.Tokens != nil {
		kinds++
	}
	if spec.Lua != nil {
		kinds++
	}
	if kinds != 1 {
		return errors.New("shader needs exactly one of pure, pattern, tokens or lua")
	}
	if (spec.Pure != nil || spec.Lua != nil) && (spec.RepeatX != nil || spec.RepeatY != nil) {
		return errors.New("repeat_x and repeat_y only apply to patterns")
	}
	if spec.Lua != nil {
		script, err := scripting.Compile(*spec.Lua)
		if err != nil {
			return err
		}
		script.Close()
	}
	return nil
}

func (spec EffectSpec) validate() error {
	switch {
	case spec.DropShadow != nil && spec.Replace != nil:
		return errors.New("effect needs exactly one of drop_shadow or replace")
	case spec.DropShadow != nil:
		return nil
	case spec.Replace != nil:
		if len(spec.Replace) != 2 {
			return errors.New("replace needs a [from, to] pair")
		}
		return nil
	default:
		return errors.New("effect needs exactly one of drop_shadow or replace")
	}
}
