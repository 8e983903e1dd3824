package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit = "  "
	ruleWidth  = 50
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// TerminalUI writes to a terminal, or any writer. Colours and the spinner
// are only used when the writer is a tty.
//
// Output may come from several goroutines (debounced search results are
// rendered from a timer), so every message or table is written whole under a
// lock shared with the Indent children.
type TerminalUI struct {
	depth int
	out   *lockedWriter
	tty   bool
	au    aurora.Aurora
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func NewTerminalUI(out io.Writer) *TerminalUI {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &TerminalUI{out: &lockedWriter{w: out}, tty: tty, au: aurora.NewAurora(tty)}
}

func (u *TerminalUI) margin() string {
	return strings.Repeat(indentUnit, u.depth)
}

func (u *TerminalUI) println(line string) {
	io.WriteString(u.out, u.margin()+line+"\n")
}

func (u *TerminalUI) Style(t StyledText) string {
	return u.colorize(t.Severity, t.Text)
}

func (u *TerminalUI) colorize(s Severity, text string) string {
	switch s {
	case SeveritySuccess:
		return u.au.Green(text).String()
	case SeverityWarn:
		return u.au.Yellow(text).String()
	case SeverityError:
		return u.au.Red(text).String()
	case SeverityCritical:
		return u.au.Bold(text).String()
	}
	return text
}

func (u *TerminalUI) printf(s Severity, format string, args []any) {
	u.println(u.colorize(s, fmt.Sprintf(format, args...)))
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.printf(SeverityInfo, format, args)
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.printf(SeveritySuccess, format, args)
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.printf(SeverityWarn, format, args)
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.printf(SeverityError, format, args)
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.printf(SeverityCritical, format, args)
}

// Section prints title centred in a rule of '=', with a blank line on both
// sides:
//
//	================= All tokens =================
func (u *TerminalUI) Section(title string) {
	label := " " + title + " "
	fill := ruleWidth - runewidth.StringWidth(label)
	if fill < 6 {
		fill = 6
	}
	line := strings.Repeat("=", fill/2) + label + strings.Repeat("=", fill-fill/2)
	io.WriteString(u.out, "\n"+u.margin()+line+"\n\n")
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(u.margin() + runewidth.FillRight(r[0], width) + "  " + r[1] + "\n")
	}
	io.WriteString(u.out, b.String())
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	u.TableWithGroups(headers, [][][]string{rows})
}

// TableWithGroups draws one bordered table, groups separated by a ├─┼─┤
// rule. Column widths are shared by all groups.
func (u *TerminalUI) TableWithGroups(headers []string, groups [][][]string) {
	if len(groups) == 0 {
		return
	}
	t := newGrid(headers, groups)
	var b strings.Builder
	emit := func(line string) {
		b.WriteString(u.margin() + line + "\n")
	}
	emit(t.rule("┌", "┬", "┐"))
	if len(headers) > 0 {
		emit(t.line(headers))
		emit(t.rule("├", "┼", "┤"))
	}
	for i, group := range groups {
		if i > 0 {
			emit(t.rule("├", "┼", "┤"))
		}
		for _, row := range group {
			emit(t.line(row))
		}
	}
	emit(t.rule("└", "┴", "┘"))
	io.WriteString(u.out, b.String())
}

// grid holds the column widths of a table. Widths ignore ANSI colours so
// styled cells line up with plain ones.
type grid struct {
	widths []int
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func newGrid(headers []string, groups [][][]string) grid {
	g := grid{widths: make([]int, len(headers))}
	measure := func(cells []string) {
		for i, c := range cells {
			if i >= len(g.widths) {
				g.widths = append(g.widths, 0)
			}
			g.widths[i] = max(g.widths[i], visibleWidth(c))
		}
	}
	measure(headers)
	for _, group := range groups {
		for _, row := range group {
			measure(row)
		}
	}
	return g
}

func (g grid) rule(left, cross, right string) string {
	dashes := make([]string, len(g.widths))
	for i, w := range g.widths {
		dashes[i] = strings.Repeat("─", w+2)
	}
	return borderStyle.Render(left + strings.Join(dashes, cross) + right)
}

func (g grid) line(cells []string) string {
	sep := borderStyle.Render("│")
	var b strings.Builder
	b.WriteString(sep)
	for i, w := range g.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" " + cell + strings.Repeat(" ", w-visibleWidth(cell)) + " ")
		b.WriteString(sep)
	}
	return b.String()
}

// Spinner animates msg until the returned function is called. Without a tty
// msg is printed once instead.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.println(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// the spinner leaves the cursor on its line
		io.WriteString(u.out, "\n")
	}
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.depth++
	return &child
}

// Writer returns u's output, prefixing every line with the current
// indentation.
func (u *TerminalUI) Writer() io.Writer {
	if u.depth == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.margin())
}
