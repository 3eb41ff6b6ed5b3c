package shell

import (
	"errors"
	"io/fs"
	"os"

	"github.com/robiot/zash/pkgs/styles"
)

// cd changes the process working directory. With no argument it is a
// no-op; tilde expansion already happened in the parser.
func (s *Shell) cd(args []string) (int, error) {
	if len(args) > 1 {
		s.errorf("%s: too many arguments", styles.Name("cd"))
		return 1, nil
	}
	if len(args) == 0 {
		return 0, nil
	}
	if err := os.Chdir(args[0]); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			// Report the bare OS message, not the wrapped path form.
			s.errorf("%s: %s", styles.Name("cd"), pathErr.Err)
		} else {
			s.errorf("%s: %s", styles.Name("cd"), err)
		}
		return 1, nil
	}
	return 0, nil
}
