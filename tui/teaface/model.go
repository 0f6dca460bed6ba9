// Package teaface hosts a face.Renderer in a bubbletea program.
//
// Frames are advanced with face.Animation.Step from tea ticks, so the
// program stays responsive while an expression plays. Keys queue
// expressions; without input the model polls blink so the idle timer can
// fire.
package teaface

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/srlehn/oledface/face"
	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/sink/termsink"
	"github.com/srlehn/oledface/surface"
	"github.com/srlehn/oledface/surface/mono"
)

const (
	// FrameMin is the shortest time a frame stays on screen.
	FrameMin = 30 * time.Millisecond
	// IdlePoll is the interval of blink calls while nothing else plays.
	IdlePoll = 250 * time.Millisecond

	defaultInk = `#7fdbff`
)

type (
	stepMsg struct{ anim *face.Animation }
	nextMsg struct{}
	idleMsg struct{}
)

var _ tea.Model = (*Model)(nil)

type Model struct {
	renderer *face.Renderer
	frame    string
	anim     *face.Animation
	queue    []face.Expression
	keys     keyMap
	help     help.Model
	style    lipgloss.Style
	err      error

	width, height int
	ink           string
	border        bool
	faceOpts      []face.Option
	flushers      []surface.Flusher
}

type Option func(*Model)

// WithPanel sets the size of the drawing surface.
func WithPanel(width, height int) Option {
	return func(m *Model) { m.width, m.height = width, height }
}

// WithInk sets the color of lit pixels. An empty string keeps the
// terminal's foreground color.
func WithInk(color string) Option { return func(m *Model) { m.ink = color } }

// WithBorder frames the panel with a rounded border.
func WithBorder(border bool) Option { return func(m *Model) { m.border = border } }

// WithFaceOptions passes options to the renderer.
func WithFaceOptions(opts ...face.Option) Option {
	return func(m *Model) { m.faceOpts = append(m.faceOpts, opts...) }
}

// WithFlushers hands every frame to further sinks besides the view.
func WithFlushers(flushers ...surface.Flusher) Option {
	return func(m *Model) { m.flushers = append(m.flushers, flushers...) }
}

// New creates the panel surface and a renderer drawing on it.
func New(opts ...Option) (*Model, error) {
	m := &Model{
		keys:   newKeyMap(),
		help:   help.New(),
		width:  consts.SurfaceWidth,
		height: consts.SurfaceHeight,
		ink:    defaultInk,
		border: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.help.ShowAll = true
	m.style = lipgloss.NewStyle()
	if m.border {
		m.style = m.style.Border(lipgloss.RoundedBorder())
	}
	if len(m.ink) > 0 {
		m.style = m.style.Foreground(lipgloss.Color(m.ink))
	}

	view := surface.FlusherFunc(func(fr *image.Paletted) error {
		m.frame = termsink.Render(fr)
		return nil
	})
	sf := mono.New(m.width, m.height, append([]surface.Flusher{view}, m.flushers...)...)
	r, err := face.NewRenderer(sf, m.faceOpts...)
	if err != nil {
		return nil, err
	}
	m.renderer = r
	return m, nil
}

// Renderer returns the hosted renderer.
func (m *Model) Renderer() *face.Renderer { return m.renderer }

// Err returns the last error of the program.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.start(face.Normal), idleTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.renderer.State().ResetUpset()
			return m, nil
		}
		expr, ok := m.keys.expression(msg)
		if !ok {
			return m, nil
		}
		if m.anim != nil {
			m.queue = append(m.queue, expr)
			return m, nil
		}
		return m, m.start(expr)
	case stepMsg:
		if msg.anim != m.anim || m.anim == nil {
			return m, nil
		}
		return m, m.step()
	case nextMsg:
		return m, m.next()
	case idleMsg:
		var cmd tea.Cmd
		if m.anim == nil && len(m.queue) == 0 {
			cmd = m.start(face.Blink)
		}
		return m, tea.Batch(cmd, idleTick())
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.style.Render(m.frame))
	b.WriteByte('\n')
	if m.anim != nil {
		fmt.Fprintf(&b, "%s %d/%d", m.anim.Expression(), m.anim.Pos(), m.anim.Len())
	}
	st := m.renderer.State()
	fmt.Fprintf(&b, "\nhappy: %t  upset: %d\n\n", st.HappyLatched, st.UpsetOffset)
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(`error: ` + m.err.Error() + "\n")
	}
	return b.String()
}

func (m *Model) start(expr face.Expression) tea.Cmd {
	a, err := m.renderer.Begin(expr)
	if err != nil {
		m.err = errors.New(err)
		return nil
	}
	if a.Done() {
		// gated off by the state
		return m.next()
	}
	m.anim = a
	return m.step()
}

func (m *Model) step() tea.Cmd {
	a := m.anim
	hold, err := a.Step()
	if err != nil {
		m.err = err
		return m.next()
	}
	wait := max(hold, FrameMin)
	if a.Done() {
		return tea.Tick(wait, func(time.Time) tea.Msg { return nextMsg{} })
	}
	return tea.Tick(wait, func(time.Time) tea.Msg { return stepMsg{anim: a} })
}

// next plays the first queued expression.
func (m *Model) next() tea.Cmd {
	m.anim = nil
	if len(m.queue) == 0 {
		return nil
	}
	expr := m.queue[0]
	m.queue = m.queue[1:]
	return m.start(expr)
}

func idleTick() tea.Cmd {
	return tea.Tick(IdlePoll, func(time.Time) tea.Msg { return idleMsg{} })
}
