package cfg

import (
	"sort"

	"github.com/moved-network/move2miden/move"
)

// Build constructs a CFG from a function's linear bytecode (spec.md §6,
// build_cfg). It runs the block splitter (C2) followed by the edge
// classifier (C3, using the reachability oracle C4 for loop orientation).
func Build(bytecode []move.Instruction) (*CFG, error) {
	blocks, err := splitBlocks(bytecode)
	if err != nil {
		return nil, err
	}
	edges, err := classifyEdges(bytecode, blocks)
	if err != nil {
		return nil, err
	}
	return &CFG{blocks: blocks, edges: edges}, nil
}

// splitBlocks implements C2 (spec.md §4.1): it validates every branching
// instruction, then partitions the bytecode into basic blocks.
func splitBlocks(bytecode []move.Instruction) (map[Label]Block, error) {
	length := len(bytecode)

	dests := map[int]bool{0: true, length: true}
	origins := map[int]bool{}

	for i, ins := range bytecode {
		if !ins.IsBranch() {
			continue
		}
		origins[i] = true
		d := ins.Dest

		if d == i {
			return nil, newError(SelfBranch, i, "branch targets its own index")
		}
		if d < 0 || d >= length {
			return nil, newError(BranchOutOfBounds, i, "destination %d out of bounds (length %d)", d, length)
		}
		if bytecode[d].IsBranch() {
			return nil, newError(BranchToBranch, i, "destination %d is itself a branch", d)
		}

		if ins.IsConditional() {
			if d < i {
				return nil, newError(ConditionalJumpBack, i, "conditional targets earlier index %d", d)
			}
			if i+1 < length && bytecode[i+1].IsConditional() {
				return nil, newError(RepeatConditionalBranch, i, "immediately followed by another conditional")
			}
			dests[i+1] = true
		}
		dests[d] = true
	}

	points := make([]int, 0, len(dests)+len(origins))
	seen := map[int]bool{}
	for p := range dests {
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}
	for p := range origins {
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}
	sort.Ints(points)

	blocks := make(map[Label]Block, len(points)+1)
	for idx := 0; idx+1 < len(points); idx++ {
		s, e := points[idx], points[idx+1]
		if origins[s] {
			continue
		}
		blocks[LabelOf(s)] = Block{Code: bytecode[s:e]}
	}
	blocks[ExitLabel()] = Block{Code: nil}

	return blocks, nil
}

// classifyEdges implements C3 (spec.md §4.2): a single sequential pass that
// assigns exactly one OutgoingEdge to every non-Exit block, promoting if/else
// headers into while loops when a later back-edge is discovered.
func classifyEdges(bytecode []move.Instruction, blocks map[Label]Block) (map[Label]OutgoingEdge, error) {
	edges := make(map[Label]OutgoingEdge, len(blocks))
	length := len(bytecode)

	var current *Label
	closeCurrent := func(edge OutgoingEdge) {
		if current != nil {
			edges[*current] = edge
			current = nil
		}
	}

	for i := 0; i < length; i++ {
		label := LabelOf(i)
		if _, isHead := blocks[label]; isHead {
			if current != nil {
				edges[*current] = Pass{Next: label}
			}
			l := label
			current = &l
		}

		ins := bytecode[i]
		switch {
		case ins.Op == move.OpBrTrue || ins.Op == move.OpBrFalse:
			d := ins.Dest
			falseCase := LabelOf(i + 1)
			if i+1 < length {
				if next := bytecode[i+1]; next.Op == move.OpBranch {
					falseCase = LabelOf(next.Dest)
				}
			}
			trueCase := LabelOf(d)
			var ifEdge If
			if ins.Op == move.OpBrTrue {
				ifEdge = If{TrueCase: trueCase, FalseCase: falseCase}
			} else {
				ifEdge = If{TrueCase: falseCase, FalseCase: trueCase}
			}
			if current == nil {
				return nil, newError(UnexpectedBlockEnd, i, "conditional branch with no open block")
			}
			edges[*current] = ifEdge
			current = nil

		case ins.Op == move.OpBranch && ins.Dest > i:
			// An unconditional branch with no open block is the companion
			// of an immediately preceding conditional (spec.md §4.2): its
			// destination was already recorded in that conditional's If edge
			// as the non-jump successor (FalseCase after a BrTrue, TrueCase
			// after a BrFalse), so there is nothing further to record here.
			if current == nil {
				continue
			}
			edges[*current] = Pass{Next: LabelOf(ins.Dest)}
			current = nil

		case ins.Op == move.OpBranch && ins.Dest < i:
			if current == nil {
				continue
			}
			header := LabelOf(ins.Dest)
			if err := promoteLoopHeader(edges, header, *current, i); err != nil {
				return nil, err
			}
			edges[*current] = LoopBack{Header: header}
			current = nil

		case ins.IsTerminator():
			if current == nil {
				return nil, newError(UnexpectedBlockEnd, i, "terminator with no open block")
			}
			edges[*current] = Pass{Next: ExitLabel()}
			current = nil
		}
	}

	if current != nil {
		edges[*current] = Pass{Next: ExitLabel()}
	}

	return edges, nil
}

// promoteLoopHeader handles the back-edge-discovery step of spec.md §4.2:
// the header's previously recorded edge must be an If, which is rewritten in
// place into a WhileTrue or WhileFalse header depending on which side of the
// conditional reaches the back-edge's origin block. at is the byte index of
// the back-edge Branch, reported in any CfgError.
func promoteLoopHeader(edges map[Label]OutgoingEdge, header, origin Label, at int) error {
	prev, ok := edges[header]
	if !ok {
		return newError(InvalidLoopHeader, at, "loop header %s has no recorded edge", header)
	}
	ifEdge, ok := prev.(If)
	if !ok {
		return newError(InvalidLoopHeader, at, "loop header %s's prior edge is not an If", header)
	}

	trueReaches := hasPath(edges, ifEdge.TrueCase, origin)
	falseReaches := hasPath(edges, ifEdge.FalseCase, origin)

	switch {
	case trueReaches && !falseReaches:
		edges[header] = WhileTrue{BodyStart: ifEdge.TrueCase, After: ifEdge.FalseCase}
	case falseReaches && !trueReaches:
		edges[header] = WhileFalse{BodyStart: ifEdge.FalseCase, After: ifEdge.TrueCase}
	default:
		return newError(InvalidLoopHeader, at, "ambiguous loop orientation at header %s", header)
	}
	return nil
}
