package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSnapshotIsDefensive(t *testing.T) {
	store := NewStore(Pair{Question: "q", Answer: "a"})

	pairs := store.Pairs()
	pairs[0].Answer = "mutated"

	assert.Equal(t, "a", store.Pairs()[0].Answer)
}

func TestStoreReplace(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Len())

	store.Replace([]Pair{{Question: "q1", Answer: "a1"}, {Question: "q2", Answer: "a2"}})
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "q1", store.Pairs()[0].Question)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	content := `
- question: "Where are you from?"
  answer: "Cracow"
- question: "How are you"
  answer: "System is up, running with no bugs."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pairs, err := LoadYAML(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Where are you from?", pairs[0].Question)
	assert.Equal(t, "System is up, running with no bugs.", pairs[1].Answer)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
