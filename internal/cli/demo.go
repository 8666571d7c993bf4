package cli

import (
	"fmt"
	"time"

	"github.com/idursun/clgl/internal/config"
	"github.com/idursun/clgl/internal/motion"
	"github.com/idursun/clgl/internal/render"
	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/screen"
	"github.com/idursun/clgl/internal/sink"
	"github.com/idursun/clgl/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"
)

func newDemoCmd() *cobra.Command {
	var (
		frame    frameFlags
		fps      int
		once     bool
		shadow   string
		useTcell bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show the built-in demonstration scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := []scene.RootOption{scene.WithLogger(loggerFromContext(cmd.Context()))}
			if shadow != "" {
				extra = append(extra, scene.WithEffects(render.DropShadow(screen.Cell(shadow))))
			}
			root, err := frame.build(cmd, config.Demo(), extra...)
			if err != nil {
				return err
			}

			if once {
				if err := root.Tick(sink.NewWriter(cmd.OutOrStdout()), false); err != nil {
					return fmt.Errorf("render demo: %w", err)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout())
				return err
			}

			interval, err := frameInterval(fps)
			if err != nil {
				return err
			}
			return runModel(cmd, newDemoModel(root, interval), useTcell)
		},
	}
	frame.register(cmd)
	cmd.Flags().IntVar(&fps, "fps", 20, "frames per second")
	cmd.Flags().BoolVar(&once, "once", false, "print a single frame and exit")
	cmd.Flags().StringVar(&shadow, "shadow", "", "drop a shadow of this character behind painted cells")
	cmd.Flags().BoolVar(&useTcell, "tcell", false, "draw with tcell instead of bubbletea")
	return cmd
}

// demoMotion slides the text across the panel and the box up and down.
func demoMotion(root *scene.Root) motion.Group {
	var g motion.Group
	if text := root.Find("text"); text != nil {
		t := motion.Move(text, text.Left+8, text.Top, 2*time.Second, ease.InOutQuad)
		t.Loop = true
		g = append(g, t)
	}
	if box := root.Find("box"); box != nil {
		t := motion.Move(box, box.Left, box.Top+1, 1500*time.Millisecond, ease.InOutSine)
		t.Loop = true
		g = append(g, t)
	}
	return g
}

func newDemoModel(root *scene.Root, interval time.Duration) *ui.Model {
	return ui.New(root,
		ui.WithInterval(interval),
		ui.WithAnimator(demoMotion(root)),
		ui.WithTitle("demo"),
	)
}
