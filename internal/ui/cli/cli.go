// Package cli implements a terminal UI for playing an interactive game
// against a CodeBreaker: it prints colored peg rows for every guess and
// response so far, and reads the human secret-keeper's feedback (or, in
// the reversed role, the human's own guesses).
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/generics"
	"github.com/go-mastermind/mastermind/internal/rules"
	"golang.org/x/term"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the
// length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

func printCentered(w io.Writer, block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	blockWidth := 0
	for _, line := range lines {
		if w := displayWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// pegPalette maps a color index to a lipgloss background. pegStyle cycles
// through it if rules.MaxColors is exceeded (it never will be), so it never
// indexes out of range.
var pegPalette = []string{"196", "226", "34", "21", "208", "201", "15", "240", "51", "93"}

func pegStyle(color int) lipgloss.Style {
	bg := pegPalette[color%len(pegPalette)]
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color("0")).Padding(0, 1)
}

// UI renders guesses and feedback to an io.Writer and reads guesses from
// a bufio.Reader, optionally in color.
type UI struct {
	Rules  rules.Rules
	color  bool
	out    io.Writer
	reader *bufio.Reader
}

// New builds a UI for the given rules, reading from stdin and writing to
// stdout. color controls whether pegs are rendered with lipgloss
// backgrounds or as plain alphabet characters.
func New(r rules.Rules, color bool) *UI {
	return &UI{Rules: r, color: color, out: os.Stdout, reader: bufio.NewReader(os.Stdin)}
}

// RenderCodeword formats cw as a row of colored pegs (or plain characters
// if color is disabled).
func (ui *UI) RenderCodeword(cw codeword.Codeword) string {
	if !ui.color {
		return cw.Format(ui.Rules.Pegs, "")
	}
	var sb strings.Builder
	for i := 0; i < ui.Rules.Pegs; i++ {
		c := cw.Peg(i)
		if c < 0 {
			sb.WriteString(" ? ")
			continue
		}
		sb.WriteString(pegStyle(c).Render(codeword.DefaultAlphabet[c : c+1]))
	}
	return sb.String()
}

// PrintGuess prints one row of the game history: the guess and its
// feedback, numbered.
func (ui *UI) PrintGuess(turn int, guess codeword.Codeword, response feedback.Feedback) {
	fmt.Fprintf(ui.out, "%3d. %s  %s\n", turn, ui.RenderCodeword(guess), response)
}

// PrintBanner centers a highlighted message, used for win/loss announcements.
func (ui *UI) PrintBanner(message string) {
	fmt.Fprintln(ui.out)
	style := lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("15")).Padding(0, 2)
	if ui.color {
		printCentered(ui.out, style.Render(message))
	} else {
		printCentered(ui.out, message)
	}
	fmt.Fprintln(ui.out)
}

// PrintHistory recaps a finished game: every guess and the response it
// got, in play order.
func (ui *UI) PrintHistory(history []generics.Pair[codeword.Codeword, feedback.Feedback]) {
	lines := generics.SliceMap(history, func(p generics.Pair[codeword.Codeword, feedback.Feedback]) string {
		return fmt.Sprintf("%s  %s", ui.RenderCodeword(p.First), p.Second)
	})
	for i, line := range lines {
		fmt.Fprintf(ui.out, "%3d. %s\n", i+1, line)
	}
}

// ReadGuess prompts for and parses one codeword from the reader,
// re-prompting on malformed input and giving up after 3 attempts in all.
func (ui *UI) ReadGuess(prompt string) (codeword.Codeword, error) {
	for attempt := 0; attempt < 3; attempt++ {
		fmt.Fprint(ui.out, prompt)
		line, err := ui.reader.ReadString('\n')
		if err != nil {
			return codeword.Codeword{}, err
		}
		cw, err := codeword.Parse(strings.TrimSpace(line), ui.Rules, "")
		if err != nil {
			fmt.Fprintf(ui.out, "    * %s, please try again.\n", err)
			continue
		}
		return cw, nil
	}
	return codeword.Codeword{}, fmt.Errorf("cli: failed to read a valid guess in 3 attempts")
}

// ReadFeedback prompts for and parses one feedback value ("<nA>A<nB>B"),
// re-prompting on malformed input and giving up after 3 attempts in all.
func (ui *UI) ReadFeedback(prompt string) (feedback.Feedback, error) {
	for attempt := 0; attempt < 3; attempt++ {
		fmt.Fprint(ui.out, prompt)
		line, err := ui.reader.ReadString('\n')
		if err != nil {
			return feedback.Feedback{}, err
		}
		fb, err := feedback.Parse(strings.TrimSpace(line), ui.Rules.Pegs)
		if err != nil {
			fmt.Fprintf(ui.out, "    * %s, please try again.\n", err)
			continue
		}
		return fb, nil
	}
	return feedback.Feedback{}, fmt.Errorf("cli: failed to read valid feedback in 3 attempts")
}
