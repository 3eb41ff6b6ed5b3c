package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editLine(t *testing.T, input string, history *fileHistory) (string, error) {
	t.Helper()
	if history == nil {
		history = &fileHistory{}
	}
	var out bytes.Buffer
	e := newLineEditor(strings.NewReader(input), &out, history)
	return e.ReadLine("$ ")
}

func TestEditorReadLine(t *testing.T) {
	line, err := editLine(t, "echo hi\r", nil)
	require.NoError(t, err)
	assert.Equal(t, "echo hi", line)
}

func TestEditorBackspace(t *testing.T) {
	line, err := editLine(t, "lsx\x7f -la\r", nil)
	require.NoError(t, err)
	assert.Equal(t, "ls -la", line)
}

func TestEditorKillLine(t *testing.T) {
	line, err := editLine(t, "garbage\x15pwd\r", nil)
	require.NoError(t, err)
	assert.Equal(t, "pwd", line)
}

func TestEditorCtrlCInterrupts(t *testing.T) {
	// Ctrl-C aborts the current input, not the shell.
	_, err := editLine(t, "doomed\x03", nil)
	assert.ErrorIs(t, err, errInterrupted)
}

func TestEditorCtrlDOnEmptyLineIsEOF(t *testing.T) {
	_, err := editLine(t, "\x04", nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestEditorCtrlDMidLineIsIgnored(t *testing.T) {
	line, err := editLine(t, "ls\x04\r", nil)
	require.NoError(t, err)
	assert.Equal(t, "ls", line)
}

func TestEditorHistoryRecall(t *testing.T) {
	history := &fileHistory{entries: []string{"echo one", "echo two"}}

	// Up recalls the most recent entry first.
	line, err := editLine(t, "\x1b[A\r", history)
	require.NoError(t, err)
	assert.Equal(t, "echo two", line)

	// Two ups reach the older entry.
	line, err = editLine(t, "\x1b[A\x1b[A\r", history)
	require.NoError(t, err)
	assert.Equal(t, "echo one", line)
}

func TestEditorHistoryDownRestoresDraft(t *testing.T) {
	history := &fileHistory{entries: []string{"echo old"}}

	line, err := editLine(t, "draft\x1b[A\x1b[B\r", history)
	require.NoError(t, err)
	assert.Equal(t, "draft", line)
}

func TestEditorSwallowsUnknownEscapes(t *testing.T) {
	// A right-arrow and a modified key must not leak into the buffer.
	line, err := editLine(t, "a\x1b[Cb\x1b[1;5Dc\r", nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", line)
}
