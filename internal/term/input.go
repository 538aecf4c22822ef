package term

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrClosed is returned by a LineReader when the operator ends input
// (Ctrl-C, Ctrl-D or end of stream).
var ErrClosed = errors.New("input closed")

// LineReader reads one line of operator input.
type LineReader interface {
	ReadLine(label string) (string, error)
}

// PromptReader reads lines with promptui's line editor.
type PromptReader struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (r PromptReader) ReadLine(label string) (string, error) {
	p := promptui.Prompt{
		Label:  label,
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
	}
	line, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return "", ErrClosed
	}
	return line, err
}

// Chooser is implemented by readers that can offer a pick list.
type Chooser interface {
	Choose(label string, items []string) (int, error)
}

// Choose shows items in a promptui select and returns the picked index.
func (r PromptReader) Choose(label string, items []string) (int, error) {
	s := promptui.Select{
		Label:  label,
		Items:  items,
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
	}
	idx, _, err := s.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return -1, ErrClosed
	}
	return idx, err
}

// ScanReader reads lines from a plain stream, for piped input and tests.
type ScanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScanReader creates a reader over in. Labels are echoed to out when it
// is not nil.
func NewScanReader(in io.Reader, out io.Writer) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *ScanReader) ReadLine(label string) (string, error) {
	if r.out != nil && label != "" {
		io.WriteString(r.out, label+": ")
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

// Prompter asks for free text through a LineReader. It satisfies
// app.Prompter.
type Prompter struct {
	Reader LineReader
}

// Prompt reads one line. A closed input or a cancelled ctx counts as a
// dismissed dialog.
func (p Prompter) Prompt(ctx context.Context, label string) (string, bool, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := p.Reader.ReadLine(label)
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-ch:
		if errors.Is(r.err, ErrClosed) {
			return "", false, nil
		}
		if r.err != nil {
			return "", false, r.err
		}
		return r.line, true, nil
	}
}
