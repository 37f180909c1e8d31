package gen

import "strings"

// indentUnit is the whitespace emitted per nesting level.
const indentUnit = "  "

// Indentation returns the leading whitespace for the given nesting level:
// level repetitions of the 2-space indent unit. Negative levels yield the
// empty string.
func Indentation(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, level)
}

// An indenter tracks the nesting depth of emitted lines. Every shift on a
// render path must be matched by an equal opposite shift before the path
// returns, so the depth is path-independent and ends where it started.
type indenter struct {
	level int
}

// shift changes the level by a signed delta.
func (i *indenter) shift(delta int) {
	i.level += delta
}

// prefix returns the leading whitespace for the current level.
func (i *indenter) prefix() string {
	return Indentation(i.level)
}
