package shell

import (
	"bufio"
	"fmt"
	"os"
)

const historyFile = ".zash_history"

// fileHistory backs the line editor's history recall with the entries
// saved in ~/.zash_history, oldest first. At(0) is the most recent entry.
type fileHistory struct {
	entries []string
}

func (h *fileHistory) Add(entry string) {
	h.entries = append(h.entries, entry)
}

func (h *fileHistory) Len() int {
	return len(h.entries)
}

func (h *fileHistory) At(idx int) string {
	return h.entries[len(h.entries)-1-idx]
}

// loadHistory reads the saved history file. The returned history is
// usable even when the file was missing.
func loadHistory(path string) (*fileHistory, error) {
	h := &fileHistory{}
	f, err := os.Open(path)
	if err != nil {
		return h, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	return h, scanner.Err()
}

// appendHistory records one accepted line. History is best-effort; a
// write problem never interrupts the session.
func appendHistory(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, line)
}
