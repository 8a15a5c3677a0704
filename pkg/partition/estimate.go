package partition

import "strings"

// sentinel stands in for placeholder values while planning, before the real
// part count exists. Three digits bound any realistic part count; results
// with 1000+ parts under-estimate the digit width, which only loosens
// packing density and never drops content.
const sentinel = "999"

// wrapperOverhead estimates the characters a part spends on wrapper text.
// Every placeholder in a non-empty fragment is substituted with the sentinel
// before measuring, and each non-empty fragment costs one newline separator.
func wrapperOverhead(w Wrapper) int {
	overhead := 0
	for _, fragment := range []string{w.Header, w.Footer, w.Pending} {
		if fragment == "" {
			continue
		}
		overhead += len(substituteSentinel(fragment)) + 1
	}
	return overhead
}

func substituteSentinel(text string) string {
	r := strings.NewReplacer(
		PlaceholderPartNumber, sentinel,
		PlaceholderTotalParts, sentinel,
		PlaceholderPartsRemaining, sentinel,
	)
	return r.Replace(text)
}
