// Package partition splits an assembled prompt into parts that fit a
// character budget. Content is packed greedily in caller order; a file
// larger than the budget is divided at line boundaries, never mid-line.
// The engine is pure and total: it performs no I/O and always returns at
// least one part.
//
// Sizes are measured with len(), i.e. bytes. For multibyte content the
// budget is therefore conservative when the caller thinks in characters.
package partition

import "strings"

// Placeholders recognized in Wrapper fragments. They are substituted with
// final values during assembly, once the total part count is known.
const (
	PlaceholderPartNumber     = "<part-number>"
	PlaceholderTotalParts     = "<total-parts>"
	PlaceholderPartsRemaining = "<parts-remaining>"
)

// Wrapper holds the per-part template fragments. Header and Footer open and
// close every part of a multi-part result; Pending is appended to every part
// except the last one. Any fragment may be empty, in which case it is
// omitted entirely.
type Wrapper struct {
	Header  string
	Footer  string
	Pending string
}

// Split distributes the given blocks over one or more parts of at most
// budget characters each, including wrapper text.
//
// When everything fits in a single part, the result is just the header,
// blocks and footer joined with newlines, with no wrapper text at all.
// Otherwise each part carries the rendered wrapper, the global header
// appears only in the first part and the global footer only in the last.
//
// The budget is honored except for one documented case: a single line that
// alone exceeds the budget is emitted whole rather than corrupted, so the
// containing part may run over.
func Split(header string, blocks []string, footer string, wrapper Wrapper, budget int) []string {
	if fitsInSinglePart(header, blocks, footer, budget) {
		return []string{assembleSinglePart(header, blocks, footer)}
	}

	plans := createPlan(header, blocks, footer, wrapper, budget)
	return assemble(plans, wrapper, header, footer)
}

// fitsInSinglePart reports whether header, blocks and footer fit in one part
// without any wrapper overhead. Each block and a non-empty header cost one
// extra newline separator.
func fitsInSinglePart(header string, blocks []string, footer string, budget int) bool {
	total := 0
	for _, block := range blocks {
		total += len(block) + 1
	}
	if header != "" {
		total += len(header) + 1
	}
	total += len(footer)

	return total <= budget
}

func assembleSinglePart(header string, blocks []string, footer string) string {
	var b strings.Builder

	if header != "" {
		b.WriteString(header)
		b.WriteByte('\n')
	}
	for _, block := range blocks {
		b.WriteString(block)
		b.WriteByte('\n')
	}
	b.WriteString(footer)

	return b.String()
}
