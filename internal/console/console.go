// Package console reads real numbers typed by a user in response to prompts.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidNumber is returned when a line is not a finite real number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNoInput is returned when input ends before a line is read.
	ErrNoInput = errors.New("no input")
)

// Prompter writes prompts to out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter over in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadLine writes prompt and returns the next line of input, trimmed.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", fmt.Errorf("%w: %w", ErrInvalidNumber, err)
			}
			return "", err
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ReadFloat writes prompt and parses the answer as a finite real number.
func (p *Prompter) ReadFloat(ctx context.Context, prompt string) (float64, error) {
	line, err := p.ReadLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return ParseFloat(line)
}

// ParseFloat parses s as a finite real number. NaN and infinities are rejected.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}
