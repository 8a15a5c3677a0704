package partition

// partPlan is the ordered list of chunks assigned to one output part. A
// chunk is a whole newline-terminated block, or one line-bounded fragment
// of a block too large to fit any part. Concatenating the chunks of all
// plans, in order, reproduces the original block sequence exactly.
type partPlan struct {
	chunks []string
}

// createPlan walks the blocks once, in caller order, and packs them into
// parts. The wrapper overhead is estimated up front with sentinel values;
// the first block also accounts for the global header, the last for the
// global footer, so the assembled parts stay within budget.
func createPlan(header string, blocks []string, footer string, wrapper Wrapper, budget int) []partPlan {
	overhead := wrapperOverhead(wrapper)

	var plans []partPlan
	var current partPlan
	size := 0

	flush := func() {
		if len(current.chunks) > 0 {
			plans = append(plans, current)
			current = partPlan{}
			size = 0
		}
	}

	for i, block := range blocks {
		contribution := len(block) + 1
		extra := 0
		if i == 0 && header != "" {
			extra += len(header) + 1
		}
		if i == len(blocks)-1 && footer != "" {
			extra += len(footer) + 1
		}

		if size+contribution+extra+overhead > budget {
			if contribution+extra+overhead > budget {
				// The block cannot fit any part even alone: divide it at
				// line boundaries sized to the room a part has left after
				// wrapper and global header/footer text.
				maxChunk := budget - overhead - extra
				if maxChunk < 0 {
					maxChunk = 0
				}
				for _, chunk := range splitByLines(block, maxChunk) {
					if size+len(chunk)+extra+overhead > budget {
						flush()
					}
					current.chunks = append(current.chunks, chunk)
					size += len(chunk)
				}
				continue
			}

			flush()
		}

		current.chunks = append(current.chunks, block+"\n")
		size += contribution
	}

	flush()

	// Zero blocks still produce one part carrying just the global
	// header/footer; the engine never returns an empty result.
	if len(plans) == 0 {
		plans = append(plans, partPlan{})
	}

	return plans
}
