package shell

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	rcFile      = ".zashrc"
	welcomeText = "Welcome to zash"
)

// RunFile executes a script line by line through the shell. It returns an
// *ExitError when the script called exit, or the I/O error that stopped
// reading. Statuses of individual lines are tracked in the shell state,
// not returned.
func (s *Shell) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := s.RunLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// LoadRC sources ~/.zashrc, creating it with a default greeting on first
// run. I/O problems are reported once and ignored; only an exit inside
// the rc file stops startup.
func (s *Shell) LoadRC() error {
	rcPath := filepath.Join(s.home, rcFile)
	if _, err := os.Stat(rcPath); err != nil {
		fmt.Fprintln(s.stdout, welcomeText)
		f, err := os.OpenFile(rcPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			s.errorf("%s", err)
			return nil
		}
		fmt.Fprintf(f, "echo %s\n", welcomeText)
		f.Close()
		return nil
	}

	if err := s.RunFile(rcPath); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		s.errorf("%s: %s", rcPath, err)
	}
	return nil
}
