package partition

import "strings"

// splitByLines divides s into chunks of at most max characters, cutting
// only at line boundaries. Every chunk ends with a newline. A single line
// longer than max is emitted alone in its own chunk rather than truncated;
// cutting inside a line would corrupt file content.
func splitByLines(s string, max int) []string {
	if s == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if current.Len()+len(line)+1 > max && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
