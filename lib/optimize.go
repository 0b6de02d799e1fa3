package lib

/*
	OptimizeParts orders parts to shorten travel: starting at start, it
	repeatedly moves to the nearest part not yet visited. Between parts at
	the same distance the one earlier in the input wins, so the result only
	depends on the input order.

	This is a greedy O(n²) heuristic, not a shortest tour.
*/
func OptimizeParts(parts []*Part, start Position) []*Part {
	remaining := make([]*Part, len(parts))
	copy(remaining, parts)

	result := make([]*Part, 0, len(parts))
	current := start
	for len(remaining) > 0 {
		best := 0
		bestDistance := Distance(current, remaining[0].Pos)
		for i := 1; i < len(remaining); i++ {
			if d := Distance(current, remaining[i].Pos); d < bestDistance {
				best, bestDistance = i, d
			}
		}

		part := remaining[best]
		result = append(result, part)
		current = part.Pos

		// keep input order of the rest for the tie-break
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return result
}

/*
	Start strategy for the optimizer.
*/
type StartMode int

const (
	// StartHome begins at a fixed machine home position.
	StartHome StartMode = iota
	// StartFirst begins at the first part of the report.
	StartFirst
)

func ParseStartMode(s string) (StartMode, bool) {
	switch s {
	case "home":
		return StartHome, true
	case "first":
		return StartFirst, true
	}
	return StartHome, false
}

/*
	Report space start position for the optimizer. Home is given in machine
	coordinates and mapped back through the transform.
*/
func StartPosition(mode StartMode, parts []*Part, home Position, t Transform) Position {
	if mode == StartFirst && len(parts) > 0 {
		return parts[0].Pos
	}
	return t.Inverse(home)
}
