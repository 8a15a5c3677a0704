package partition

import (
	"strconv"
	"strings"
)

// assemble renders every planned part into its final text, substituting the
// now-known part positions into the wrapper fragments. The global header is
// placed only in the first part, the global footer only in the last, and
// the pending notice on every part except the last. Pure function: running
// it twice over the same plans yields identical output.
func assemble(plans []partPlan, wrapper Wrapper, header, footer string) []string {
	total := len(plans)
	parts := make([]string, 0, total)

	for i, plan := range plans {
		var b strings.Builder

		if wrapper.Header != "" {
			b.WriteString(renderPosition(wrapper.Header, i+1, total))
			b.WriteByte('\n')
		}
		if i == 0 && header != "" {
			b.WriteString(header)
			b.WriteByte('\n')
		}
		for _, chunk := range plan.chunks {
			b.WriteString(chunk)
		}
		if i == total-1 && footer != "" {
			b.WriteString(footer)
			b.WriteByte('\n')
		}
		if wrapper.Footer != "" {
			b.WriteString(renderPosition(wrapper.Footer, i+1, total))
			b.WriteByte('\n')
		}
		if i < total-1 && wrapper.Pending != "" {
			b.WriteString(renderPending(wrapper.Pending, total-(i+1)))
			b.WriteByte('\n')
		}

		parts = append(parts, strings.TrimRight(b.String(), " \t\r\n"))
	}

	return parts
}

// renderPosition substitutes <part-number> and <total-parts> in a wrapper
// fragment.
func renderPosition(text string, partNumber, totalParts int) string {
	text = strings.ReplaceAll(text, PlaceholderPartNumber, strconv.Itoa(partNumber))
	return strings.ReplaceAll(text, PlaceholderTotalParts, strconv.Itoa(totalParts))
}

// renderPending substitutes <parts-remaining> in the pending notice.
func renderPending(text string, partsRemaining int) string {
	return strings.ReplaceAll(text, PlaceholderPartsRemaining, strconv.Itoa(partsRemaining))
}
