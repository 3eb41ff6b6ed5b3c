// Package shell holds the shell state and the execution engine: it walks
// parser output, dispatches builtins, spawns external processes, wires
// pipeline stdio together and tracks the exit status that drives && and
// || short-circuiting.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/robiot/zash/pkgs/lexer"
	"github.com/robiot/zash/pkgs/parser"
	"github.com/robiot/zash/pkgs/styles"
)

// Shell is the process-lifetime state of one shell: the status of the
// last completed command and the resolved home directory. Variables live
// in the process environment, the working directory is the process CWD.
type Shell struct {
	status int
	home   string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// ExitError asks the caller to terminate the shell process with Code. It
// travels as an error value so the REPL, the script runner and the -c
// entry point each decide when the process actually exits.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// New creates a shell bound to the process stdio. It fails when the home
// directory cannot be resolved, which the shell depends on for ~, the rc
// file and history.
func New() (*Shell, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New("Home directory could not be found. Make sure you have a folder for your user in /home")
	}
	return &Shell{
		home:   home,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}, nil
}

// Status returns the exit status of the most recently completed command.
func (s *Shell) Status() int {
	return s.status
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintf(s.stderr, "%s: %s\n", styles.Name("zash"), fmt.Sprintf(format, args...))
}

// RunLine lexes, parses and executes one line, updating the shell status
// command by command. && and || gate the rest of the line on the status
// of what ran before them. The returned error is non-nil only when a
// builtin asked the shell to terminate, in which case it is an
// *ExitError.
func (s *Shell) RunLine(line string) error {
	sep := ""
	for _, tok := range lexer.LineToCmds(strings.TrimSpace(line)) {
		if tok.Type == lexer.LineSeparator {
			sep = tok.Text
			continue
		}
		if (sep == "&&" && s.status != 0) || (sep == "||" && s.status == 0) {
			break
		}
		status, err := s.runPipeline(tok.Text)
		if err != nil {
			return err
		}
		s.status = status
	}
	return nil
}

// builtins run in-process and never participate in piping: they read and
// write the shell's own stdio.
var builtins = map[string]func(*Shell, []string) (int, error){
	"cd":   (*Shell).cd,
	"exit": (*Shell).exit,
}

// runPipeline parses one command string and executes its pipeline,
// returning the status of the final segment. Syntax errors are reported
// here and reset the status to zero, which mirrors the behavior users of
// the original shell depend on.
func (s *Shell) runPipeline(cmd string) (int, error) {
	parts, err := parser.ParseCmd(cmd, s.status)
	if err != nil {
		s.errorf("%s", err)
		return 0, nil
	}

	status := s.status
	var children []*exec.Cmd
	var prevStdout io.ReadCloser

	// abandon cuts a partly spawned pipeline loose: closing the dangling
	// read end makes upstream writers exit on EPIPE instead of blocking.
	abandon := func() {
		if prevStdout != nil {
			prevStdout.Close()
		}
		reapChildren(children)
	}

	for i, part := range parts {
		if part.Type == parser.Separator {
			if glyph := part.Argv[0]; glyph != "|" {
				s.errorf("%s: this feature is currently not implemented", glyph)
				abandon()
				return 1, nil
			}
			continue
		}

		name, args := part.Argv[0], part.Argv[1:]

		if builtin, ok := builtins[name]; ok {
			if prevStdout != nil {
				// A builtin never reads the pipe; cut the upstream writer
				// loose instead of letting it block, and let the dropped
				// producers finish on their own.
				prevStdout.Close()
				prevStdout = nil
			}
			reapChildren(children)
			children = nil
			st, err := builtin(s, args)
			if err != nil {
				return 0, err
			}
			status = st
			continue
		}

		c := exec.Command(name, args...)
		if prevStdout != nil {
			c.Stdin = prevStdout
		} else {
			c.Stdin = s.stdin
		}
		c.Stderr = s.stderr

		var pipe io.ReadCloser
		if i < len(parts)-1 {
			if pipe, err = c.StdoutPipe(); err != nil {
				s.errorf("%s", err)
				abandon()
				return 1, nil
			}
		} else {
			c.Stdout = s.stdout
		}

		if err := c.Start(); err != nil {
			s.errorf("command not found: %s", name)
			abandon()
			return 1, nil
		}
		if prevStdout != nil {
			// The child owns its copy of the pipe now; closing ours lets
			// EOF and EPIPE propagate when either side goes away.
			prevStdout.Close()
		}
		children = append(children, c)
		prevStdout = pipe
	}

	if len(children) > 0 {
		last := children[len(children)-1]
		reapChildren(children[:len(children)-1])
		status = exitStatus(last.Wait())
	}
	return status, nil
}

// reapChildren waits on pipeline children in the background. Their exit
// codes do not matter; only the final segment decides the status.
func reapChildren(children []*exec.Cmd) {
	for _, c := range children {
		go func() { _ = c.Wait() }()
	}
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
