package shell

import (
	"strconv"

	"github.com/robiot/zash/pkgs/styles"
)

// exit terminates the shell with the given code, 0 when omitted. A
// non-numeric argument is reported and leaves the shell running with
// status 2.
func (s *Shell) exit(args []string) (int, error) {
	if len(args) == 0 {
		return 0, &ExitError{}
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		s.errorf("%s: numeric argument required", styles.Name("exit"))
		return 2, nil
	}
	return 0, &ExitError{Code: code}
}
