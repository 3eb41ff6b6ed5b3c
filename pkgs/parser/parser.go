// Package parser turns the lexer's token stream into argv vectors ready to
// hand to the OS. It resolves variable references against the environment,
// expands a leading ~ to the home directory, glob-expands composed words
// and applies definition side effects.
package parser

import (
	"os"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/robiot/zash/pkgs/lexer"
)

// TokenType classifies parser output parts.
type TokenType int

const (
	Command   TokenType = iota // Argv is a complete argument vector
	Separator                  // Argv holds exactly the separator glyph
)

var tokenNames = [...]string{
	Command:   "COMMAND",
	Separator: "SEPARATOR",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && int(t) >= 0 {
		return tokenNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Part is one element of a parsed pipeline: either a command's argv or a
// pipe-class separator between two commands.
type Part struct {
	Type TokenType
	Argv []string
}

// ParseCmd tokenizes one command string and resolves it into pipeline
// parts. status is the exit status of the last completed command, exposed
// as $?. Commands whose fragments all expand to nothing are omitted, so a
// returned Command always has a non-empty argv. Pipe separators strictly
// alternate with commands; a leading, trailing or doubled pipe is a
// *lexer.SyntaxError.
func ParseCmd(cmd string, status int) ([]Part, error) {
	tokens, err := lexer.CmdToTokens(cmd)
	if err != nil {
		return nil, err
	}

	const noToken = lexer.CmdTokenType(-1)

	var result []Part
	var argv []string
	var combine strings.Builder
	before := noToken
	isDefinition := false

	for _, tok := range tokens {
		if tok.Type == lexer.Pipe {
			if before == noToken || before == lexer.Pipe {
				// Ex "| echo" or "echo a | | b"
				return nil, &lexer.SyntaxError{Near: tok.Text}
			}
			if !allEmpty(argv) {
				result = append(result, Part{Type: Command, Argv: argv})
			}
			argv = nil
			result = append(result, Part{Type: Separator, Argv: []string{tok.Text}})
			before = tok.Type
			continue
		}

		part := tok.Text
		switch {
		case tok.Type == lexer.Definition:
			isDefinition = true
		case tok.Type == lexer.Variable:
			if tok.Text == "?" {
				part = strconv.Itoa(status)
			} else {
				part = os.Getenv(tok.Text)
			}
		case tok.Type == lexer.Normal && strings.HasPrefix(part, "~"):
			if home, err := os.UserHomeDir(); err == nil {
				part = home + part[1:]
			}
		}

		if tok.Join {
			combine.WriteString(part)
		} else {
			word := combine.String() + part
			combine.Reset()

			if isDefinition {
				isDefinition = false
				// All definitions are exported; there is no shell-local
				// variable table.
				if name, value, ok := strings.Cut(word, "="); ok {
					os.Setenv(name, value)
				}
			} else {
				argv = append(argv, expandGlob(word)...)
			}
		}
		before = tok.Type
	}

	// Ex "echo hello |"
	if before == lexer.Pipe {
		return nil, &lexer.SyntaxError{Near: "|"}
	}

	if !allEmpty(argv) {
		result = append(result, Part{Type: Command, Argv: argv})
	}

	return result, nil
}

// allEmpty reports whether argv holds no text at all. A command whose
// fragments all expanded to nothing is omitted entirely.
func allEmpty(argv []string) bool {
	for _, a := range argv {
		if a != "" {
			return false
		}
	}
	return true
}

// expandGlob matches word against the filesystem. Matches come back in
// lexical order; a word that matches nothing stays literal, and a word
// that is not a valid pattern is dropped.
func expandGlob(word string) []string {
	if word == "" {
		return []string{word}
	}
	matches, err := doublestar.FilepathGlob(word)
	if err != nil {
		return nil
	}
	if len(matches) == 0 {
		return []string{word}
	}
	return matches
}
