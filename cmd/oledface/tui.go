package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/srlehn/oledface/tui/teaface"
)

func init() { rootCmd.AddCommand(tuiCmd) }

var tuiCmd = &cobra.Command{
	Use:   tuiCmdStr,
	Short: `interactive expression player`,
	Long:  `pick expressions with the keyboard; the face blinks while idle`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(tuiFunc)
	},
}

var tuiCmdStr = "tui"

func tuiFunc(s *session) error {
	m, err := teaface.New(
		teaface.WithPanel(s.cfg.Panel.Width, s.cfg.Panel.Height),
		teaface.WithInk(s.cfg.Preview.Ink),
		teaface.WithBorder(s.cfg.Preview.Border),
		teaface.WithFaceOptions(s.faceOptions()),
	)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-s.ctx.Done()
		p.Quit()
	}()
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}
