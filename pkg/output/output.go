// Package output delivers the finished parts: to stdout by default, to a
// file (or numbered files for multi-part results), or to the system
// clipboard one part at a time.
package output

import (
	"fmt"
	"io"
	"strings"
)

// WriteStdout prints all parts newline-joined.
func WriteStdout(parts []string, w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(parts, "\n"))
	return err
}
