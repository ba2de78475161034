// Package opcode implements the pluggable opcode translator (C7) consumed by
// the structured emitter. Func is a pure per-opcode function with no
// control-flow responsibility; branching bytecodes must never reach it — the
// emitter treats them as consumed by the CFG.
package opcode

import (
	"fmt"

	"github.com/moved-network/move2miden/miden"
	"github.com/moved-network/move2miden/move"
)

// ErrBranchReachedTranslator is returned if a branching instruction somehow
// reaches Translate; this is an invariant violation, not a recoverable
// translation error (spec.md §7).
var ErrBranchReachedTranslator = fmt.Errorf("opcode: branching instruction reached the translator")

// Func maps a single non-branch Move instruction to zero or more Miden AST
// nodes. Implementations are pure: given the same instruction they always
// return the same fragment.
type Func func(move.Instruction) ([]miden.Node, error)

// Default is the reference opcode translator, grounded in the Move-to-Miden
// compiler's compile_body switch (see original_source/src/compiler.rs): most
// opcodes map one-to-one, Div/Mod map to the checked u32 variants (spec.md
// §9's open question on division semantics resolves in favor of the checked
// forms, matching the only original_source revision that implements them),
// and Pop/locals/Call are stubs consistent with spec.md §1's "Non-goals".
func Default(ins move.Instruction) ([]miden.Node, error) {
	if ins.IsBranch() {
		return nil, ErrBranchReachedTranslator
	}
	if ins.IsTerminator() {
		// Ret/Abort carry no stack effect of their own; the CFG builder
		// already turned them into a Pass-to-Exit edge, so the instruction
		// itself is a no-op here (original_source/src/compiler.rs's
		// compile_body: Ret/Abort fall through to continue).
		return nil, nil
	}

	switch ins.Op {
	case move.OpAdd:
		return []miden.Node{miden.Instr(miden.OpAdd)}, nil
	case move.OpSub:
		return []miden.Node{miden.Instr(miden.OpSub)}, nil
	case move.OpMul:
		return []miden.Node{miden.Instr(miden.OpMul)}, nil
	case move.OpDiv:
		return []miden.Node{miden.Instr(miden.OpU32CheckedDiv)}, nil
	case move.OpMod:
		return []miden.Node{miden.Instr(miden.OpU32CheckedMod)}, nil
	case move.OpEq:
		return []miden.Node{miden.Instr(miden.OpEq)}, nil
	case move.OpLt:
		return []miden.Node{miden.Instr(miden.OpLt)}, nil
	case move.OpGt:
		return []miden.Node{miden.Instr(miden.OpGt)}, nil
	case move.OpLdU32:
		return []miden.Node{miden.InstrImm(miden.OpPushU32, ins.Imm)}, nil
	case move.OpLdU64:
		if ins.Imm > 0xFFFFFFFF {
			return nil, fmt.Errorf("opcode: u64 constant %d does not fit in a Miden u32 word (multi-word arithmetic is out of scope)", ins.Imm)
		}
		return []miden.Node{miden.InstrImm(miden.OpPushU32, ins.Imm)}, nil
	case move.OpPop:
		return []miden.Node{miden.Instr(miden.OpDrop)}, nil
	case move.OpMoveLoc, move.OpCopyLoc:
		return []miden.Node{miden.InstrImm(miden.OpLocLoad, ins.Imm)}, nil
	case move.OpStLoc:
		return []miden.Node{miden.InstrImm(miden.OpLocStore, ins.Imm)}, nil
	case move.OpCall:
		return []miden.Node{miden.InstrImm(miden.OpExecLocal, ins.Imm)}, nil
	default:
		return nil, fmt.Errorf("opcode: unimplemented opcode %v", ins.Op)
	}
}
