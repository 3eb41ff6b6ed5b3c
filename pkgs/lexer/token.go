package lexer

import "fmt"

// LineTokenType classifies the output of LineToCmds.
type LineTokenType int

const (
	LineCommand   LineTokenType = iota // a whitespace-trimmed command string
	LineSeparator                      // ";", "&&" or "||"
)

var lineTokenNames = [...]string{
	LineCommand:   "COMMAND",
	LineSeparator: "SEPARATOR",
}

func (t LineTokenType) String() string {
	if int(t) < len(lineTokenNames) && int(t) >= 0 {
		return lineTokenNames[t]
	}
	return fmt.Sprintf("LineTokenType(%d)", int(t))
}

// LineToken is one element of a line split into commands and separators.
// Command text keeps its quotes and escapes verbatim so CmdToTokens can
// re-interpret them.
type LineToken struct {
	Type LineTokenType
	Text string
}

// CmdTokenType classifies the output of CmdToTokens.
type CmdTokenType int

const (
	Normal     CmdTokenType = iota // a whitespace-delimited argument fragment
	Pipe                           // "|", "<" or ">"
	Definition                     // NAME=... with a valid variable name
	Variable                       // the name following an unquoted $
)

var cmdTokenNames = [...]string{
	Normal:     "NORMAL",
	Pipe:       "PIPE",
	Definition: "DEFINITION",
	Variable:   "VARIABLE",
}

func (t CmdTokenType) String() string {
	if int(t) < len(cmdTokenNames) && int(t) >= 0 {
		return cmdTokenNames[t]
	}
	return fmt.Sprintf("CmdTokenType(%d)", int(t))
}

// CmdToken is a single typed token of one command string. Join is set when
// the token is directly adjacent to the next one, meaning the parser must
// concatenate their values into a single argv element.
type CmdToken struct {
	Type CmdTokenType
	Text string
	Join bool
}
