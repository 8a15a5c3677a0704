package engine

// EstimateTokens provides a conservative token estimate for a prompt of
// the given character count. Uses the chars/4 heuristic, which slightly
// overestimates for English text.
func EstimateTokens(chars int) int {
	if chars <= 0 {
		return 0
	}
	return (chars + 3) / 4 // ceiling division
}
