// Package console implements the engine's line-based I/O over plain streams.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Messages written by the console.
const (
	InvalidCommandMessage = "invalid command"
	DeathMessage          = "YOU DEAD"
)

// Console reads selections line by line and writes the story as text lines.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ShowLife writes the current life.
func (c *Console) ShowLife(life int) {
	fmt.Fprintf(c.out, "Life: %d\n", life)
}

// ShowSituation writes the node text.
func (c *Console) ShowSituation(text string) {
	fmt.Fprintln(c.out, text)
}

// ShowOption writes one enumerated option.
func (c *Console) ShowOption(index int, text string) {
	fmt.Fprintf(c.out, "[%d],%s\n", index, text)
}

// ShowInvalidCommand reports a selection that matched no option.
func (c *Console) ShowInvalidCommand() {
	fmt.Fprintln(c.out, InvalidCommandMessage)
}

// ShowSeparator writes a blank line between turns.
func (c *Console) ShowSeparator() {
	fmt.Fprintln(c.out)
}

// ShowDeath writes the terminal failure message.
func (c *Console) ShowDeath() {
	fmt.Fprintln(c.out, DeathMessage)
}

// ReadLine blocks for the next input line, without its line ending.
// Lines of any length are accepted. It returns io.EOF when input ends.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
