package engine

import "github.com/parrotlabs/parley/core"

// selectBest returns the index of the highest-confidence candidate. Ties go
// to the later index, so the last-registered adapter prevails. The boolean
// is false when there are no candidates.
func selectBest(candidates []core.Response) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Confidence >= candidates[best].Confidence {
			best = i
		}
	}
	return best, true
}
