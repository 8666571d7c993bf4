// Package cli implements the clgl command-line interface.
//
// Commands:
//   - render: print one frame of a scene file
//   - play: animate a scene file in the terminal
//   - demo: the built-in demonstration scene
//
// All commands accept --verbose (-v) for debug logging on stderr.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/idursun/clgl/internal/config"
	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/screen"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// NewRootCommand builds the clgl command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "clgl",
		Short:         "clgl composes shader-driven regions into terminal frames",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newDemoCmd())
	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// frameFlags are the root overrides shared by every command.
type frameFlags struct {
	width      int
	height     int
	background string
	hide       []string
}

func (f *frameFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "frame width (default: terminal width - 1)")
	cmd.Flags().IntVar(&f.height, "height", 0, "frame height (default: terminal height - 1)")
	cmd.Flags().StringVar(&f.background, "background", " ", "character written for empty cells")
	cmd.Flags().StringSliceVar(&f.hide, "hide", nil, "hide the named nodes (repeatable)")
}

// build creates the root for s with the flag overrides applied.
func (f *frameFlags) build(cmd *cobra.Command, s *config.Scene, extra ...scene.RootOption) (*scene.Root, error) {
	opts, err := f.options(cmd)
	if err != nil {
		return nil, err
	}
	root := s.Build(append(opts, extra...)...)
	if err := hideNodes(root, f.hide); err != nil {
		return nil, err
	}
	return root, nil
}

// options returns root options for the flags the user actually set.
func (f *frameFlags) options(cmd *cobra.Command) ([]scene.RootOption, error) {
	var opts []scene.RootOption
	if cmd.Flags().Changed("width") {
		if f.width < 0 {
			return nil, fmt.Errorf("--width must not be negative")
		}
		opts = append(opts, scene.WithWidth(f.width))
	}
	if cmd.Flags().Changed("height") {
		if f.height < 0 {
			return nil, fmt.Errorf("--height must not be negative")
		}
		opts = append(opts, scene.WithHeight(f.height))
	}
	if cmd.Flags().Changed("background") {
		opts = append(opts, scene.WithBackground(screen.Cell(f.background)))
	}
	return opts, nil
}
