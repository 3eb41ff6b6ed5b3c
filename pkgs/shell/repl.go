package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/robiot/zash/pkgs/styles"
)

// Interactive sources the rc file and runs the read-eval loop on the
// controlling terminal until exit or EOF. The terminal is switched to raw
// mode only while a line is being edited, so foreground children run with
// the normal terminal discipline and receive Ctrl-C themselves; a Ctrl-C
// during editing just discards the buffer and re-prompts.
func (s *Shell) Interactive() error {
	if err := s.LoadRC(); err != nil {
		return err
	}

	histPath := filepath.Join(s.home, historyFile)
	history, err := loadHistory(histPath)
	if err != nil {
		s.errorf("No previous history")
	}

	editor := newLineEditor(os.Stdin, os.Stdout, history)

	fd := int(os.Stdin.Fd())
	for {
		line, err := s.readLine(editor, fd)
		switch {
		case errors.Is(err, errInterrupted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.stdout, "exit")
			return nil
		case err != nil:
			s.errorf("%s", err)
			return nil
		}

		if strings.TrimSpace(line) != "" {
			history.Add(line)
			appendHistory(histPath, line)
		}
		if err := s.RunLine(line); err != nil {
			return err
		}
	}
}

// readLine runs one edited read in raw mode and restores the terminal
// before returning.
func (s *Shell) readLine(e *lineEditor, fd int) (string, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)
	return e.ReadLine(s.prompt())
}

// prompt builds "user@host cwd •••", with the home directory prefix of
// the cwd shown as ~.
func (s *Shell) prompt() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	if strings.HasPrefix(cwd, s.home) {
		cwd = "~" + strings.TrimPrefix(cwd, s.home)
	}

	username := "?"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	host, err := os.Hostname()
	if err != nil {
		host = "?"
	}

	return fmt.Sprintf("%s %s %s ",
		styles.PromptUser(username+"@"+host),
		styles.PromptCwd(cwd),
		styles.PromptDots())
}
