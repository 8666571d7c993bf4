package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/idursun/clgl/internal/config"
	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/sink"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		frame   frameFlags
		noReset bool
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Print one frame of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}
			root, err := frame.build(cmd, s, scene.WithLogger(logger))
			if err != nil {
				return err
			}
			logger.Debug("scene loaded", "path", args[0], "width", root.Width(), "height", root.Height(), "nodes", len(root.Nodes()))

			out := sink.NewTerminal(cmd.OutOrStdout())
			if err := root.Tick(out, !noReset); err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return err
			}

			if copyOut {
				if err := clipboard.WriteAll(root.String()); err != nil {
					return fmt.Errorf("copy frame: %w", err)
				}
				logger.Info("frame copied to clipboard")
			}
			return nil
		},
	}
	frame.register(cmd)
	cmd.Flags().BoolVar(&noReset, "no-reset", false, "do not move the cursor to the top-left corner first")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the frame to the clipboard")
	return cmd
}
