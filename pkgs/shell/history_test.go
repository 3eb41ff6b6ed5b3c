package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), historyFile)

	appendHistory(path, "echo one")
	appendHistory(path, "echo two")

	h, err := loadHistory(path)
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())

	// At(0) is the most recent entry.
	assert.Equal(t, "echo two", h.At(0))
	assert.Equal(t, "echo one", h.At(1))
}

func TestLoadHistoryMissing(t *testing.T) {
	h, err := loadHistory(filepath.Join(t.TempDir(), historyFile))
	assert.Error(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestHistoryAdd(t *testing.T) {
	h := &fileHistory{}
	h.Add("first")
	h.Add("second")
	assert.Equal(t, "second", h.At(0))
	assert.Equal(t, "first", h.At(1))
}
