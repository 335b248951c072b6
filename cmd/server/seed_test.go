package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	doc := `
committees:
  - name: Security Council
    period: morning
    slots: [Brazil, France]
  - name: WHO
    period: afternoon
    slots: []
`
	entries, err := parseCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Security Council", entries[0].Name)
	assert.Equal(t, []string{"Brazil", "France"}, entries[0].Slots)
	assert.Equal(t, "afternoon", entries[1].Period)
}

func TestParseCatalogRejectsUnknownFields(t *testing.T) {
	_, err := parseCatalog(strings.NewReader("committees:\n  - name: X\n    seats: 3\n"))
	assert.Error(t, err)
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate", "seed", "export"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
