package miden

import (
	"fmt"
	"strings"
)

// Print renders prog as indented Miden-like assembly text. This is not a
// real Miden assembler — it exists so the CLI and tests can show emitted
// output without depending on the external assembler (spec.md §1).
func Print(prog ProgramAst) string {
	var b strings.Builder
	for _, proc := range prog.Procs {
		printProc(&b, proc)
		b.WriteByte('\n')
	}
	printProc(&b, prog.Main)
	return b.String()
}

func printProc(b *strings.Builder, proc ProcedureAst) {
	fmt.Fprintf(b, "proc.%s.%d\n", proc.Name, proc.NumLocals)
	printNodes(b, proc.Body, 1)
	b.WriteString("end\n")
}

func printNodes(b *strings.Builder, nodes []Node, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, n := range nodes {
		switch v := n.(type) {
		case InstructionNode:
			if v.Instruction.Op == OpPushU32 || v.Instruction.Op == OpExecLocal ||
				v.Instruction.Op == OpLocLoad || v.Instruction.Op == OpLocStore {
				fmt.Fprintf(b, "%s%s.%d\n", indent, v.Instruction.Op, v.Instruction.Imm)
			} else {
				fmt.Fprintf(b, "%s%s\n", indent, v.Instruction.Op)
			}
		case IfElseNode:
			fmt.Fprintf(b, "%sif.true\n", indent)
			printNodes(b, v.True, depth+1)
			fmt.Fprintf(b, "%selse\n", indent)
			printNodes(b, v.False, depth+1)
			fmt.Fprintf(b, "%send\n", indent)
		case WhileNode:
			fmt.Fprintf(b, "%swhile.true\n", indent)
			printNodes(b, v.Body, depth+1)
			fmt.Fprintf(b, "%send\n", indent)
		}
	}
}
