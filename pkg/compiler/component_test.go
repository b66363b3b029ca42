package compiler_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promokit/promokit/pkg/compiler"
)

func TestComponent_MatchesCompile(t *testing.T) {
	t.Parallel()

	cfg := campaign(compiler.TemplateBanner, 2)

	var sb strings.Builder
	err := compiler.Component(cfg).Render(context.Background(), &sb)
	require.NoError(t, err)
	require.Equal(t, compiler.Compile(cfg), sb.String(),
		"the templ adapter must emit the exact compiled document")
}
