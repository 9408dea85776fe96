package sl

import (
	"context"
	"errors"
	"testing"

	"github.com/sl-lang/sl/errz"
	"github.com/sl-lang/sl/syntax"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Check(ctx, `3 4 + println`))

	err := Check(ctx, "printn +", WithFilename("main.sl"))
	var verrs *syntax.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs.Errors, 2)
	require.True(t, verrs.HasErrors())
	require.Equal(t, `unknown procedure "printn"`, verrs.Errors[1].Message)
	require.Equal(t, "main.sl", verrs.Errors[1].Position.File)
	require.Equal(t, syntax.Warning, verrs.Errors[0].Severity)
}

func TestCheckParseError(t *testing.T) {
	err := Check(context.Background(), "}")
	kind, ok := errz.KindOf(err)
	require.True(t, ok)
	require.Equal(t, errz.ErrSyntax, kind)
}
