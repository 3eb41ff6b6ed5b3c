package main

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/robiot/zash/pkgs/shell"
	"github.com/robiot/zash/pkgs/styles"
)

// Build-time variables - can be set via ldflags
var (
	Version = "dev"
)

var (
	interactive bool
	login       bool
	command     string
)

var rootCmd = &cobra.Command{
	Use:   "zash [script_file]",
	Short: "A modern interactive shell",
	Long: `zash is an interactive command-line shell. Without arguments it reads
commands from the terminal; with a script file or -c it runs the given
commands and exits.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	// -i and -l exist so programs that invoke $SHELL with the usual
	// flags keep working; the shell is always interactive when no
	// command or script is given.
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "accepted for compatibility")
	rootCmd.Flags().BoolVarP(&login, "login", "l", false, "accepted for compatibility")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single command line and exit")
}

func run(cmd *cobra.Command, args []string) error {
	// The shell itself catches and discards SIGINT; foreground children
	// start with the default disposition (an ignored signal would be
	// inherited), receive it from the terminal and exit on their own.
	signal.Notify(make(chan os.Signal, 1), os.Interrupt)

	sh, err := shell.New()
	if err != nil {
		return err
	}

	switch {
	case command != "":
		return sh.RunLine(command)
	case len(args) == 1:
		return sh.RunFile(args[0])
	default:
		return sh.Interactive()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		styles.Errorf("%s", err)
		os.Exit(1)
	}
}
