package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFilterSingleColumn(t *testing.T) {
	cond, args := searchFilter("alpha beta", 2, "name")
	require.Equal(t, "(name ILIKE $2 OR name ILIKE $3)", cond)
	require.Equal(t, []any{"%alpha%", "%beta%"}, args)
}

func TestSearchFilterTwoColumns(t *testing.T) {
	cond, args := searchFilter("promo", 2, "cat.name", "c.name")
	require.Equal(t, "(cat.name ILIKE $2 OR c.name ILIKE $3)", cond)
	require.Equal(t, []any{"%promo%", "%promo%"}, args)
}

func TestSearchFilterEmpty(t *testing.T) {
	cond, args := searchFilter("", 2, "name")
	require.Empty(t, cond)
	require.Empty(t, args)
}

// Repeated whitespace must not produce blank tokens: a %% pattern would
// match every row and defeat the filter.
func TestSearchFilterRepeatedWhitespace(t *testing.T) {
	cond, args := searchFilter("  alpha   beta  ", 1, "name")
	require.Equal(t, "(name ILIKE $1 OR name ILIKE $2)", cond)
	require.Equal(t, []any{"%alpha%", "%beta%"}, args)
	for _, a := range args {
		require.NotEqual(t, "%%", a)
	}
}

func TestSearchFilterWhitespaceOnly(t *testing.T) {
	cond, args := searchFilter("   ", 1, "name")
	require.Empty(t, cond)
	require.Empty(t, args)
}
