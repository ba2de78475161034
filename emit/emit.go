// Package emit implements the structured emitter (C6): a recursive
// traversal that consumes a CFG and produces a structured Miden AST,
// resolving if/else join points and inverting while-false loops into
// while-true loops with a leading NOT.
package emit

import (
	"fmt"

	"github.com/moved-network/move2miden/cfg"
	"github.com/moved-network/move2miden/miden"
	"github.com/moved-network/move2miden/opcode"
)

// Emit produces the sequence of AST nodes corresponding to executing c from
// current up to, but not including, stop (spec.md §4.5). translate lowers
// each block's non-branch instructions (C7); it must never see a branching
// instruction, since the CFG has already consumed those.
func Emit(c *cfg.CFG, current, stop cfg.Label, translate opcode.Func) ([]miden.Node, error) {
	if current.Equal(stop) {
		return nil, nil
	}

	var out []miden.Node

	body, err := translateBlock(c, current, translate)
	if err != nil {
		return nil, err
	}
	out = append(out, body...)

	edge, ok := c.Edge(current)
	if !ok {
		return nil, fmt.Errorf("emit: no outgoing edge recorded for %s", current)
	}

	switch e := edge.(type) {
	case cfg.Pass:
		rest, err := Emit(c, e.Next, stop, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, rest...)

	case cfg.If:
		join := c.Join(e.TrueCase, e.FalseCase)
		trueBody, err := Emit(c, e.TrueCase, join, translate)
		if err != nil {
			return nil, err
		}
		falseBody, err := Emit(c, e.FalseCase, join, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, miden.IfElseNode{True: trueBody, False: falseBody})
		rest, err := Emit(c, join, stop, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, rest...)

	case cfg.WhileTrue:
		loopBody, err := Emit(c, e.BodyStart, current, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, miden.WhileNode{Body: loopBody})
		rest, err := Emit(c, e.After, stop, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, rest...)

	case cfg.WhileFalse:
		out = append(out, miden.Instr(miden.OpNot))
		loopBody, err := Emit(c, e.BodyStart, current, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, miden.WhileNode{Body: loopBody})
		rest, err := Emit(c, e.After, stop, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, rest...)

	case cfg.LoopBack:
		// Replay the loop header's condition opcodes inline so the target
		// while-true construct's implicit per-iteration test sees the
		// correct value (spec.md §4.5, "Why replay the header block").
		headerBody, err := translateBlock(c, e.Header, translate)
		if err != nil {
			return nil, err
		}
		out = append(out, headerBody...)
		if headerEdge, ok := c.Edge(e.Header); ok {
			if _, isWhileFalse := headerEdge.(cfg.WhileFalse); isWhileFalse {
				out = append(out, miden.Instr(miden.OpNot))
			}
		}
		// Do not recurse further: the enclosing While's body call terminates
		// here, since stop == the header that issued this call.

	default:
		return nil, fmt.Errorf("emit: unhandled edge kind %T", edge)
	}

	return out, nil
}

func translateBlock(c *cfg.CFG, l cfg.Label, translate opcode.Func) ([]miden.Node, error) {
	block, ok := c.Block(l)
	if !ok {
		return nil, fmt.Errorf("emit: no block recorded for %s", l)
	}
	var out []miden.Node
	for _, ins := range block.Code {
		frag, err := translate(ins)
		if err != nil {
			return nil, err
		}
		out = append(out, frag...)
	}
	return out, nil
}
