package main

import (
	"github.com/spf13/cobra"

	"github.com/srlehn/oledface"
	"github.com/srlehn/oledface/internal/util"
	"github.com/srlehn/oledface/surface"
)

func init() { rootCmd.AddCommand(playCmd) }

var playCmd = &cobra.Command{
	Use:   playCmdStr + ` <expression>...`,
	Short: `play expressions in the terminal`,
	Long:  `play expressions one after another in the terminal`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(playFunc(args))
	},
}

var playCmdStr = "play"

func playFunc(names []string) sessionFunc {
	return func(s *session) error {
		out, closer, err := s.output()
		if err != nil {
			return err
		}
		defer util.TryClose(closer)
		r, _, err := s.newRenderer([]surface.Flusher{out})
		if err != nil {
			return err
		}
		return oledface.Play(s.ctx, r, names...)
	}
}
