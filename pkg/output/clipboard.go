package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// Clipboard copies parts to the system clipboard. With an interactive
// stdin, multi-part results are copied one part at a time, advancing when
// the user confirms they pasted the previous one; otherwise everything is
// copied at once.
type Clipboard struct {
	In  *os.File
	Out io.Writer
}

func NewClipboard() *Clipboard {
	return &Clipboard{In: os.Stdin, Out: os.Stderr}
}

func (c *Clipboard) Copy(parts []string) error {
	if len(parts) <= 1 || !isatty.IsTerminal(c.In.Fd()) {
		if err := clipboard.WriteAll(strings.TrimSpace(strings.Join(parts, "\n"))); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.Out, "Output copied to clipboard.")
		return nil
	}

	scanner := bufio.NewScanner(c.In)
	for i, part := range parts {
		if err := clipboard.WriteAll(part); err != nil {
			return fmt.Errorf("failed to copy part %d to clipboard: %w", i+1, err)
		}
		fmt.Fprintf(c.Out, "Part %d of %d copied to clipboard.", i+1, len(parts))
		if i == len(parts)-1 {
			fmt.Fprintln(c.Out)
			break
		}
		fmt.Fprint(c.Out, " Press Enter to copy the next part...")
		if !scanner.Scan() {
			fmt.Fprintln(c.Out)
			break
		}
		fmt.Fprintln(c.Out)
	}
	return nil
}
