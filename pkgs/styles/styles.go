// Package styles centralizes the terminal styling of the shell: the error
// prefix and the prompt segments. Colors are adaptive so they stay
// readable on both light and dark backgrounds.
package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ColorError is used for the error prefix and failing builtin names.
	ColorError = lipgloss.AdaptiveColor{
		Light: "#D73737",
		Dark:  "#FF5555",
	}

	// ColorUser is used for the user@host prompt segment.
	ColorUser = lipgloss.AdaptiveColor{
		Light: "#2980B9",
		Dark:  "#8BE9FD",
	}

	// ColorCwd is used for the working directory prompt segment.
	ColorCwd = lipgloss.AdaptiveColor{
		Light: "#17A2B8",
		Dark:  "#50FA7B",
	}

	// ColorAccent is used for the last prompt dot.
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#B7950B",
		Dark:  "#F1FA8C",
	}
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(ColorError)
	userStyle   = lipgloss.NewStyle().Foreground(ColorUser)
	cwdStyle    = lipgloss.NewStyle().Foreground(ColorCwd)
	accentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)

// Errorf prints a shell error to stderr with the styled "zash" prefix.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", errStyle.Render("zash"), fmt.Sprintf(format, args...))
}

// Name renders a builtin name for use inside an error message.
func Name(name string) string {
	return errStyle.Render(name)
}

// PromptUser renders the user@host segment of the prompt.
func PromptUser(userAtHost string) string {
	return userStyle.Render(userAtHost)
}

// PromptCwd renders the working directory segment of the prompt.
func PromptCwd(cwd string) string {
	return cwdStyle.Render(cwd)
}

// PromptDots renders the three-dot tail of the prompt.
func PromptDots() string {
	return userStyle.Render("•") + errStyle.Render("•") + accentStyle.Render("•")
}
