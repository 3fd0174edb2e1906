// internal/prompt/terminal.go
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	cyan = color.New(color.FgCyan).SprintFunc()
	red  = color.New(color.FgRed).SprintFunc()

	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 2).
		MarginLeft(2).
		Align(lipgloss.Center)
	questionStyle = lipgloss.NewStyle().Bold(true)
	counterStyle  = lipgloss.NewStyle().Faint(true)
)

// Terminal prompts on stdin/stdout, drawing each question in a box and
// clearing the screen between questions when stdout is a terminal.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	isTTY bool

	total int
	done  int
	keep  bool // suppress the next clear so a rejection stays visible
}

func NewTerminal() *Terminal {
	return &Terminal{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		isTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// SetTotal sets the counter denominator shown in each question box.
func (t *Terminal) SetTotal(n int) {
	t.total = n
}

// Advance marks one variable finished. The counter counts variables,
// not prompts, so a generated variable moves it without ever asking.
func (t *Terminal) Advance() {
	t.done++
}

func (t *Terminal) Ask(question string, info []string, defaultValue string) (string, error) {
	retry := t.keep
	t.keep = false
	if t.isTTY && !retry {
		fmt.Fprint(t.out, "\x1b[2J\x1b[H")
	}

	fmt.Fprintln(t.out, t.renderBox(question, info))
	fmt.Fprintln(t.out)
	if defaultValue != "" {
		fmt.Fprintf(t.out, "  %s [%s]: ", cyan("?"), defaultValue)
	} else {
		fmt.Fprintf(t.out, "  %s ", cyan("?"))
	}

	input, err := t.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// Reject tells the user why the last answer was refused. The message is
// kept on screen through the next Ask.
func (t *Terminal) Reject(value, pattern string) {
	t.keep = true
	fmt.Fprintf(t.out, "\n  %s %q does not match %s\n\n", red("✗"), value, pattern)
}

func (t *Terminal) Confirm(question string) (bool, error) {
	fmt.Fprintf(t.out, "  %s %s (y/N): ", cyan("?"), question)
	input, err := t.in.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}

func (t *Terminal) renderBox(question string, info []string) string {
	lines := []string{questionStyle.Render(question)}
	if len(info) > 0 {
		lines = append(lines, "")
		lines = append(lines, info...)
	}
	// questions asked after the last variable, like the output
	// filename, carry no counter
	if t.total > 0 && t.done < t.total {
		lines = append(lines, "", counterStyle.Render(fmt.Sprintf("(%d/%d)", t.done+1, t.total)))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
