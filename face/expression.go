package face

import (
	"strings"

	"github.com/srlehn/oledface/internal/consts"
	"github.com/srlehn/oledface/internal/errors"
	"github.com/srlehn/oledface/internal/util"
)

// Expression names one of the hand-authored animations.
type Expression string

const (
	Close       Expression = `close`
	Normal      Expression = `normal`
	Blink       Expression = `blink`
	Sad         Expression = `sad`
	Upset       Expression = `upset`
	Happy       Expression = `happy`
	Cute        Expression = `cute`
	Angry       Expression = `angry`
	Sleepy      Expression = `sleepy`
	Wink        Expression = `wink`
	Surprised   Expression = `surprised`
	Confused    Expression = `confused`
	Love        Expression = `love`
	Dizzy       Expression = `dizzy`
	Thinking    Expression = `thinking`
	Mischievous Expression = `mischievous`
	Crying      Expression = `crying`
	Nervous     Expression = `nervous`
)

func (e Expression) String() string { return string(e) }

// Valid reports whether e is a known expression.
func (e Expression) Valid() bool {
	_, ok := scripts[e]
	return ok
}

// Expressions returns all known expressions sorted by name.
func Expressions() []Expression { return util.MapsKeysSorted(scripts) }

// ParseExpression looks up an expression by its case-insensitive name.
func ParseExpression(name string) (Expression, error) {
	e := Expression(strings.ToLower(strings.TrimSpace(name)))
	if !e.Valid() {
		return ``, errors.WrapPrefix(consts.ErrUnknownExpression, `"`+name+`"`, 0)
	}
	return e, nil
}
