package sl

import (
	"context"

	"github.com/sl-lang/sl/builtins"
	"github.com/sl-lang/sl/syntax"
)

// Check parses source and reports the problems a run would hit, without
// running it. A parse failure is returned as is; otherwise the result is nil
// or a *syntax.ValidationErrors.
func Check(ctx context.Context, source string, opts ...Option) error {
	program, err := Parse(ctx, source, opts...)
	if err != nil {
		return err
	}
	if verrs := syntax.Run(program, syntax.NewProgramValidator(builtins.Names())); verrs != nil {
		return verrs
	}
	return nil
}
