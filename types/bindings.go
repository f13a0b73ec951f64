package types

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/biutthapa/doodle/frame"
)

var ErrBindingArity = errors.New("Binding list must have an even number of forms")

var logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger routes diagnostics of this package to l. Nil silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", log.LstdFlags)
	}
	logger = l
}

// ToDictionary reads a let-style binding list (name value name value ...).
// Pairs whose first form is not a symbol are skipped, not rejected.
// Later bindings of the same name overwrite earlier ones.
func ToDictionary(exprs []Expr) (frame.Frame[string, Expr], error) {
	if len(exprs)%2 != 0 {
		return frame.New[string, Expr](), fmt.Errorf("%w: found %d", ErrBindingArity, len(exprs))
	}
	names := make([]string, 0, len(exprs)/2)
	values := make([]Expr, 0, len(exprs)/2)
	for i := 0; i < len(exprs); i += 2 {
		name, ok := exprs[i].(Symbol)
		if !ok {
			logger.Printf("Skipping binding with non-symbol name: %v", exprs[i])
			continue
		}
		names = append(names, string(name))
		values = append(values, exprs[i+1])
	}
	return frame.BuildFrom(names, values)
}
