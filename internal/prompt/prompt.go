// Package prompt reads operator answers from a line-oriented console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineMarker is printed before each collected line.
const LineMarker = "> "

// Prompter asks questions on out and reads answers from in.
// A single Prompter must be used for all reads from one input so buffered
// input is not lost between questions. Lines have no length limit.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Confirm asks a yes/no question. Only "y" or "Y" confirms; anything else,
// including end of input, declines.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, ok, err := p.readLine()
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(p.out)
		return false, nil
	}

	return strings.EqualFold(line, "y"), nil
}

// Lines reads lines, printing LineMarker before each, until an empty line
// or end of input. Lines are returned verbatim in input order.
func (p *Prompter) Lines() ([]string, error) {
	var lines []string
	for {
		fmt.Fprint(p.out, LineMarker)

		line, ok, err := p.readLine()
		if err != nil {
			return lines, err
		}
		if !ok {
			fmt.Fprintln(p.out)
			return lines, nil
		}
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// readLine returns the next line without its terminator. ok is false at
// end of input; a final unterminated line is still returned.
func (p *Prompter) readLine() (line string, ok bool, err error) {
	line, err = p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}
