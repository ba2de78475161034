package cfg

import "github.com/moved-network/move2miden/internal/worklist"

// hasPath runs a breadth-first search over the partially-built edges map,
// from start to target, treating every successor named by any edge kind as
// an unweighted forward neighbour (spec.md §4.3). It is used twice per
// back-edge by the edge classifier (C3) to decide loop orientation; cost is
// bounded by the number of already-classified blocks.
func hasPath(edges map[Label]OutgoingEdge, start, target Label) bool {
	if start.Equal(target) {
		return true
	}
	visited := map[Label]bool{start: true}
	var q worklist.Queue[Label]
	q.Push(start)
	for q.Len() > 0 {
		cur := q.Pop()
		for _, next := range successors(edges[cur]) {
			if next.Equal(target) {
				return true
			}
			if !visited[next] {
				visited[next] = true
				q.Push(next)
			}
		}
	}
	return false
}

// successors returns the forward neighbours named by a single edge, in no
// particular order. A nil edge (block not yet classified) has none.
func successors(edge OutgoingEdge) []Label {
	switch e := edge.(type) {
	case Pass:
		return []Label{e.Next}
	case If:
		return []Label{e.TrueCase, e.FalseCase}
	case LoopBack:
		return []Label{e.Header}
	case WhileTrue:
		return []Label{e.BodyStart, e.After}
	case WhileFalse:
		return []Label{e.BodyStart, e.After}
	default:
		return nil
	}
}

// forwardSuccessors is successors minus LoopBack's jump to its header. The
// join finder (joinFind) walks this view: a back-edge only ever leads to a
// label that dominates it, so following it while searching for an if/else's
// reconvergence point pulls in the enclosing loop header as a false common
// descendant whenever both arms loop back (spec.md §8 scenario 5). The
// reachability oracle (hasPath) needs the full successor set, since deciding
// loop orientation is exactly a question about where back-edges lead.
func forwardSuccessors(edge OutgoingEdge) []Label {
	if _, ok := edge.(LoopBack); ok {
		return nil
	}
	return successors(edge)
}
