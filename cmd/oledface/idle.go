package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/internal/util"
	"github.com/srlehn/oledface/surface"
)

func init() {
	rootCmd.AddCommand(idleCmd)
	idleCmd.Flags().DurationVar(&idleEveryFlag, `every`, 0, `interval between mood expressions (overrides config)`)
}

var idleCmd = &cobra.Command{
	Use:   idleCmdStr + ` [mood expression]...`,
	Short: `blink until interrupted`,
	Long: `run the idle host loop: blink whenever the blink timer allows it and
play a random mood expression at a fixed interval`,
	Run: func(cmd *cobra.Command, args []string) {
		run(idleFunc(args))
	},
}

var (
	idleCmdStr    = "idle"
	idleEveryFlag time.Duration
)

func idleFunc(args []string) sessionFunc {
	return func(s *session) error {
		moods := s.cfg.Idle.Mood
		if len(args) > 0 {
			moods = args
		}
		var exprs []face.Expression
		for _, m := range moods {
			expr, err := face.ParseExpression(m)
			if err != nil {
				return err
			}
			exprs = append(exprs, expr)
		}
		every := s.cfg.Idle.Every
		if idleEveryFlag > 0 {
			every = idleEveryFlag
		}

		out, closer, err := s.output()
		if err != nil {
			return err
		}
		defer util.TryClose(closer)
		r, _, err := s.newRenderer([]surface.Flusher{out})
		if err != nil {
			return err
		}
		poll := time.NewTicker(s.cfg.Idle.Poll)
		defer poll.Stop()
		var moodC <-chan time.Time
		if len(exprs) > 0 && every > 0 {
			mood := time.NewTicker(every)
			defer mood.Stop()
			moodC = mood.C
		}
		return idleLoop(s.ctx, r, poll.C, moodC, exprs)
	}
}

// idleLoop blinks on every poll tick and plays a random mood on every mood
// tick until ctx is done.
func idleLoop(ctx context.Context, r *face.Renderer, poll, mood <-chan time.Time, moods []face.Expression) error {
	if err := r.Normal(ctx); err != nil {
		return err
	}
	if len(moods) == 0 {
		mood = nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-poll:
			if err := r.Blink(ctx); err != nil {
				return err
			}
		case <-mood:
			if err := r.Play(ctx, moods[rand.Intn(len(moods))]); err != nil {
				return err
			}
		}
	}
}
