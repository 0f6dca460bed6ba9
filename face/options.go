package face

import (
	"log/slog"

	"github.com/srlehn/oledface/internal/errors"
)

type Option interface {
	ApplyOption(r *Renderer) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Renderer) error

func (o OptFunc) ApplyOption(r *Renderer) error { return o(r) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(r *Renderer) error { return r.SetOptions([]Option(o)...) }

func (r *Renderer) SetOptions(opts ...Option) error {
	if err := errors.NilReceiver(r); err != nil {
		return err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(r); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetState shares st with the renderer. Renderers of different displays
// should each have their own state.
func SetState(st *State) Option {
	return OptFunc(func(r *Renderer) error {
		if st == nil {
			return errors.NilParam(st)
		}
		r.state = st
		return nil
	})
}

func SetClock(c Clock) Option {
	return OptFunc(func(r *Renderer) error { r.clock = c; return nil })
}

func SetSleeper(s Sleeper) Option {
	return OptFunc(func(r *Renderer) error { r.sleeper = s; return nil })
}

// SetSLogger enables logging through h, or slog.Default() for a nil handler.
func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(r *Renderer) error {
		if enable {
			if h == nil {
				r.logger = slog.Default()
			} else {
				r.logger = slog.New(h)
			}
		} else {
			r.logger = nil
		}
		return nil
	})
}

func SetLogger(l *slog.Logger) Option {
	return OptFunc(func(r *Renderer) error { r.logger = l; return nil })
}

var setDefaults Option = OptFunc(func(r *Renderer) error {
	if r.state == nil {
		r.state = NewState()
	}
	if r.clock == nil {
		r.clock = wallClock
	}
	if r.sleeper == nil {
		r.sleeper = timer
	}
	return nil
})
