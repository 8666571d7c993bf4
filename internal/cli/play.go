package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/idursun/clgl/internal/config"
	"github.com/idursun/clgl/internal/ui"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var (
		frame    frameFlags
		fps      int
		useTcell bool
	)

	cmd := &cobra.Command{
		Use:   "play <scene.toml>",
		Short: "Show a scene in the terminal until q is pressed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadFile(args[0])
			if err != nil {
				return err
			}
			root, err := frame.build(cmd, s)
			if err != nil {
				return err
			}
			interval, err := frameInterval(fps)
			if err != nil {
				return err
			}
			return runModel(cmd, ui.New(root, ui.WithInterval(interval), ui.WithTitle(args[0])), useTcell)
		},
	}
	frame.register(cmd)
	cmd.Flags().IntVar(&fps, "fps", 10, "frames per second")
	cmd.Flags().BoolVar(&useTcell, "tcell", false, "draw with tcell instead of bubbletea")
	return cmd
}

func frameInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("--fps must be positive, got %d", fps)
	}
	return time.Second / time.Duration(fps), nil
}

// runModel plays m until the user quits, on a tcell screen when useTcell is
// set and as a bubbletea program otherwise.
func runModel(cmd *cobra.Command, m *ui.Model, useTcell bool) error {
	if useTcell {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		return m.RunScreen(cmd.Context(), screen)
	}
	return runProgram(cmd, m)
}

func runProgram(cmd *cobra.Command, m *ui.Model) error {
	logger := loggerFromContext(cmd.Context())
	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	start := time.Now()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Debug("program finished", "frames", m.Frames(), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
