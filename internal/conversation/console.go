package conversation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// Compile-time interface check.
var _ domain.Console = (*LineConsole)(nil)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// LineConsole reads newline-terminated input from a stream and writes
// plain lines to another. It is the default console on stdin/stdout.
type LineConsole struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineConsole creates a console over in and out.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &LineConsole{scanner: sc, out: out}
}

// Println writes the operands followed by a newline.
func (c *LineConsole) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text followed by a newline. Matches PrintFunc.
func (c *LineConsole) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

// ReadLine returns the next line without its terminator. The read itself
// cannot be interrupted; ctx is only checked before blocking.
func (c *LineConsole) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.scanner.Scan() {
		return strings.TrimSuffix(c.scanner.Text(), "\r"), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", io.EOF
}
