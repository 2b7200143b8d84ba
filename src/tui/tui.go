package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// TUI wraps all terminal interaction so that tests can swap stdin/stdout for
// buffers.
type TUI struct {
	input  io.Reader
	output io.Writer

	scanner        *bufio.Scanner
	spinnerEnabled bool
}

func New() *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = input
	t.scanner = nil
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// EnableSpinner turns the waiting indicator on. It should stay off when not
// attached to a terminal.
func (t *TUI) EnableSpinner(enabled bool) {
	t.spinnerEnabled = enabled
}

// ReadLine prints the prompt and reads one line of input, trimmed of
// surrounding whitespace. io.EOF is returned when the input is exhausted.
func (t *TUI) ReadLine(prompt string, a ...any) (string, error) {
	fmt.Fprintf(t.output, prompt, a...)

	if t.scanner == nil {
		t.scanner = bufio.NewScanner(t.input)
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(t.scanner.Text()), nil
}

func (t *TUI) Println(a ...any) {
	fmt.Fprintln(t.output, a...)
}

func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// WithSpinner runs fn while showing a spinner with the given message. When
// the spinner is disabled fn simply runs without one.
func (t *TUI) WithSpinner(message string, fn func() error) error {
	if !t.spinnerEnabled {
		return fn()
	}

	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithWriter(t.output),
		spinner.WithSuffix(" "+message),
	)
	s.Start()
	defer s.Stop()

	return fn()
}
