package cfg

import "github.com/moved-network/move2miden/move"

// Block is a contiguous slice of the original instruction buffer containing
// no branching instructions. It borrows from the caller-owned buffer rather
// than copying it (spec.md §3, §5): Code is a re-slice of the function's
// original []move.Instruction, so the caller's buffer must outlive any CFG
// built from it.
type Block struct {
	Code []move.Instruction
}
