package cfg

import (
	"sort"

	"github.com/moved-network/move2miden/internal/worklist"
)

// joinFind returns the nearest label reachable from both a and b, the join
// point of an if/else (spec.md §4.4). Because every block has exactly one
// outgoing edge, both paths must reconverge at or before Exit, which is
// always a valid fallback. Ties are broken by the total order on labels for
// determinism.
func joinFind(edges map[Label]OutgoingEdge, a, b Label) Label {
	reachA := joinReachableFrom(edges, a)
	reachB := joinReachableFrom(edges, b)

	var candidates []Label
	for l := range reachA {
		if reachB[l] {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		// Exit is always a valid fallback (spec.md §4.4); only reachable on a
		// malformed CFG, since a reducible graph's two arms always reconverge
		// at or before Exit.
		return ExitLabel()
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Less(candidates[j])
	})
	return candidates[0]
}

// joinReachableFrom returns the set of labels reachable from start via
// forwardSuccessors, including start itself. It excludes LoopBack edges so
// that an if/else nested inside a loop body finds its true reconvergence
// point rather than the enclosing loop's header (spec.md §8 scenario 5).
func joinReachableFrom(edges map[Label]OutgoingEdge, start Label) map[Label]bool {
	visited := map[Label]bool{start: true}
	var q worklist.Queue[Label]
	q.Push(start)
	for q.Len() > 0 {
		cur := q.Pop()
		for _, next := range forwardSuccessors(edges[cur]) {
			if !visited[next] {
				visited[next] = true
				q.Push(next)
			}
		}
	}
	return visited
}
