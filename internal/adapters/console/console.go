// Package console runs a game session over a line-based reader and writer.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/numguess/internal/domain"
	"svw.info/numguess/internal/usecase"
)

// Options controls console output.
type Options struct {
	NoColor bool
	// Debug discloses the secret at startup.
	Debug bool
}

type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

func New(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, opts: opts}
}

// Run loops until the session is won. Input ending first yields
// io.ErrUnexpectedEOF.
func (c *Console) Run(s *usecase.Session) error {
	c.println(styleTitle, "Guess the number!")
	if s.Puzzle.Mode == domain.WinHint {
		c.println(styleMuted, fmt.Sprintf("Find a number that sets all %d hint bits. Type ? to list the properties.", s.Len()))
	} else {
		c.println(styleMuted, "Type ? to list the properties.")
	}
	if c.opts.Debug {
		c.println(styleMuted, fmt.Sprintf("The secret number is: %d", s.Puzzle.Secret))
	}

	for {
		c.println(stylePlain, "Please input your guess.")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "?" {
			c.describe(s)
			continue
		}
		guess, ok := parseGuess(line)
		if !ok {
			c.println(styleError, "Again.")
			continue
		}

		fb := s.Guess(guess)
		c.println(stylePlain, fmt.Sprintf("You guessed: %d", guess))
		c.println(styleHint, "Hint: "+fb.Hint.Format(s.Len()))
		if fb.Won {
			c.println(styleWin, "You win!")
			return nil
		}
		if s.Puzzle.Mode == domain.WinNumber {
			switch fb.Order {
			case usecase.TooSmall:
				c.println(styleNear, "Too small!")
			case usecase.TooBig:
				c.println(styleNear, "Too big!")
			}
		}
	}
}

func (c *Console) describe(s *usecase.Session) {
	for i, d := range s.Describe() {
		c.println(styleMuted, fmt.Sprintf("bit %d: %s", i, d))
	}
}

// parseGuess accepts a non-negative integer inside the guessing domain.
func parseGuess(line string) (uint8, bool) {
	n, err := strconv.ParseUint(line, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

var (
	stylePlain = lipgloss.NewStyle()
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleNear  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleWin   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (c *Console) println(style lipgloss.Style, text string) {
	if !c.opts.NoColor {
		text = style.Render(text)
	}
	fmt.Fprintln(c.out, text)
}
