package gen

import (
	"github.com/scriba-dev/scriba"
	"github.com/scriba-dev/scriba/schema"
)

// conditional renders one logical element that may be present
// unconditionally, present only under a preprocessor symbol, or present in
// two mutually exclusive forms switched by that symbol. primary and
// alternative are per-kind render closures; nil marks an absent branch.
//
// Directive lines are emitted at column zero; branch closures indent their
// own content. A wrapper with nothing to emit is a precondition violation
// and panics with a scriba.EmptyConditionalError.
func (w *Writer) conditional(context string, condition *schema.CompilationCondition, primary, alternative func()) {
	switch {
	case condition == nil:
		if primary == nil {
			panic(scriba.NewEmptyConditionalError(context))
		}
		primary()
	case primary != nil && alternative != nil:
		w.directive("{$IFDEF " + condition.Symbol + "}")
		primary()
		w.directive("{$ELSE}")
		alternative()
		w.directive("{$ENDIF}")
	case primary != nil:
		w.directive("{$IFDEF " + condition.Symbol + "}")
		primary()
		w.directive("{$ENDIF}")
	case alternative != nil:
		w.directive("{$IFNDEF " + condition.Symbol + "}")
		alternative()
		w.directive("{$ENDIF}")
	default:
		panic(scriba.NewEmptyConditionalErrorWithSymbol(context, condition.Symbol))
	}
}
