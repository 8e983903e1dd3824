package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text, mirroring
// the output methods on UI.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green, enabled tokens
	SeverityWarn                     // yellow, disabled tokens
	SeverityError                    // red
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity annotation. It marshals to
// JSON as the plain Text.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is all the terminal output of the token commands.
//
// Production code uses TerminalUI, tests use RecordingUI which captures every
// call so assertions don't depend on colours or table borders.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error does NOT exit or return an error, callers decide what to do next.
	Error(format string, args ...any)
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row.
	Table(headers []string, rows [][]string)

	// TableWithGroups renders a bordered table where each group of rows is
	// separated from the next by a divider. A token list renders one group
	// per section.
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner starts a spinner with msg and returns the function stopping it.
	Spinner(msg string) func()

	// Indent returns a child UI one level deeper sharing the same writer.
	Indent() UI

	// Writer returns an io.Writer prefixing the current indentation.
	Writer() io.Writer
}
