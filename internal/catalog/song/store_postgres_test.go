package song

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSongQueryIsWellFormed(t *testing.T) {
	query := insertSongQuery()

	// A slot/argument mismatch leaves fmt artifacts in the rendered SQL.
	assert.NotContains(t, query, "%!")
	assert.NotContains(t, query, "%s")

	open := strings.Index(query, "(")
	closing := strings.Index(query, ")")
	require.Greater(t, closing, open)
	columns := strings.Split(query[open+1:closing], ",")

	// NOW() fills the createdat column without a bind parameter.
	placeholders := regexp.MustCompile(`\$\d+`).FindAllString(query, -1)
	assert.Len(t, columns, len(placeholders)+1)

	seen := map[string]bool{}
	for _, c := range columns {
		name := strings.TrimSpace(c)
		assert.False(t, seen[name], "column %q listed twice", name)
		seen[name] = true
	}
}
