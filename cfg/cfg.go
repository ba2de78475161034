package cfg

import "sort"

// CFG is the pair of label-keyed mappings described by spec.md §3: every
// non-Exit block has exactly one outgoing edge, every label named by an edge
// is a key of Blocks, and Entry/Exit are always present. CFGs are built once
// per function (Build) and are immutable afterwards; the emitter (package
// emit) consumes one by read-only traversal.
type CFG struct {
	blocks map[Label]Block
	edges  map[Label]OutgoingEdge
}

// Block returns the block recorded for label l.
func (c *CFG) Block(l Label) (Block, bool) {
	b, ok := c.blocks[l]
	return b, ok
}

// Edge returns the outgoing edge recorded for label l. Exit has none.
func (c *CFG) Edge(l Label) (OutgoingEdge, bool) {
	e, ok := c.edges[l]
	return e, ok
}

// Join returns the nearest label reachable from both a and b — the join
// point of an if/else (C5, spec.md §4.4). It is exported so the structured
// emitter (package emit) can resolve an If edge's reconvergence point.
func (c *CFG) Join(a, b Label) Label {
	return joinFind(c.edges, a, b)
}

// Labels returns every label in the CFG, sorted in the total order of
// spec.md §3, so that iteration is deterministic (spec.md §8).
func (c *CFG) Labels() []Label {
	labels := make([]Label, 0, len(c.blocks))
	for l := range c.blocks {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Less(labels[j]) })
	return labels
}
