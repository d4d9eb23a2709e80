package motd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var errNotInteractive = errors.New("stdin is not a terminal; pass --index")

// prompter reads answers line by line from the command's input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) (*prompter, error) {
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return nil, errNotInteractive
	}
	return &prompter{in: bufio.NewReader(in), out: out}, nil
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// chooseIndex asks for a 1-based position in [1, n].
func (p *prompter) chooseIndex(n int) (int, error) {
	fmt.Fprintf(p.out, "Select a MOTD [1-%d]: ", n)
	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("failed to read selection: %w", err)
	}
	return parseIndex(line, n)
}

// confirm returns true only for an explicit yes.
func (p *prompter) confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func parseIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q", s)
	}
	return checkIndex(idx, n)
}

func checkIndex(idx, n int) (int, error) {
	if idx < 1 || idx > n {
		return 0, fmt.Errorf("selection %d out of range [1-%d]", idx, n)
	}
	return idx, nil
}
