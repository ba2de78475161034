package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moved-network/move2miden/cfg"
	"github.com/moved-network/move2miden/move"
)

func opaque(n int) []move.Instruction {
	out := make([]move.Instruction, n)
	for i := range out {
		out[i] = move.Instruction{Op: move.OpAdd}
	}
	return out
}

func brTrue(d int) move.Instruction  { return move.Instruction{Op: move.OpBrTrue, Dest: d} }
func brFalse(d int) move.Instruction { return move.Instruction{Op: move.OpBrFalse, Dest: d} }
func branch(d int) move.Instruction  { return move.Instruction{Op: move.OpBranch, Dest: d} }
func ret() move.Instruction          { return move.Instruction{Op: move.OpRet} }
func abort() move.Instruction        { return move.Instruction{Op: move.OpAbort} }

func TestBuildStraightLine(t *testing.T) {
	bytecode := opaque(6)

	graph, err := cfg.Build(bytecode)
	require.NoError(t, err)

	entryBlock, ok := graph.Block(cfg.EntryLabel())
	require.True(t, ok)
	assert.Len(t, entryBlock.Code, 6)

	exitBlock, ok := graph.Block(cfg.ExitLabel())
	require.True(t, ok)
	assert.Empty(t, exitBlock.Code)

	edge, ok := graph.Edge(cfg.EntryLabel())
	require.True(t, ok)
	assert.Equal(t, cfg.Pass{Next: cfg.ExitLabel()}, edge)

	_, hasExitEdge := graph.Edge(cfg.ExitLabel())
	assert.False(t, hasExitEdge)
}

func TestBuildForwardIfElseWithEarlyExits(t *testing.T) {
	bytecode := append(opaque(5), brFalse(7), branch(9), move.Instruction{Op: move.OpAdd}, abort(), ret())

	graph, err := cfg.Build(bytecode)
	require.NoError(t, err)

	entryEdge, _ := graph.Edge(cfg.EntryLabel())
	assert.Equal(t, cfg.If{TrueCase: cfg.PointLabel(9), FalseCase: cfg.PointLabel(7)}, entryEdge)

	p7, _ := graph.Edge(cfg.PointLabel(7))
	assert.Equal(t, cfg.Pass{Next: cfg.ExitLabel()}, p7)

	p9, _ := graph.Edge(cfg.PointLabel(9))
	assert.Equal(t, cfg.Pass{Next: cfg.ExitLabel()}, p9)
}

// TestBuildWhileTrueLoop reproduces spec.md §8 scenario 3: a loop whose
// condition block is entered on true and exits on false.
func TestBuildWhileTrueLoop(t *testing.T) {
	var bytecode []move.Instruction
	bytecode = append(bytecode, opaque(4)...)                            // 0..4: entry setup
	bytecode = append(bytecode, opaque(3)...)                            // 4..7: loop test
	bytecode = append(bytecode, brFalse(18))                             // 7
	bytecode = append(bytecode, branch(9))                               // 8
	bytecode = append(bytecode, opaque(8)...)                            // 9..17: loop body
	bytecode = append(bytecode, branch(4))                               // 17
	bytecode = append(bytecode, move.Instruction{Op: move.OpAdd}, ret()) // 18..20

	require.Len(t, bytecode, 20)

	graph, err := cfg.Build(bytecode)
	require.NoError(t, err)

	entryEdge, _ := graph.Edge(cfg.EntryLabel())
	assert.Equal(t, cfg.Pass{Next: cfg.PointLabel(4)}, entryEdge)

	headerEdge, _ := graph.Edge(cfg.PointLabel(4))
	assert.Equal(t, cfg.WhileTrue{BodyStart: cfg.PointLabel(9), After: cfg.PointLabel(18)}, headerEdge)

	bodyEdge, _ := graph.Edge(cfg.PointLabel(9))
	assert.Equal(t, cfg.LoopBack{Header: cfg.PointLabel(4)}, bodyEdge)

	afterEdge, _ := graph.Edge(cfg.PointLabel(18))
	assert.Equal(t, cfg.Pass{Next: cfg.ExitLabel()}, afterEdge)
}

func TestBuildRejectsBranchToBranch(t *testing.T) {
	bytecode := []move.Instruction{{Op: move.OpAdd}, branch(2), branch(0)}

	_, err := cfg.Build(bytecode)
	require.Error(t, err)

	var cfgErr *cfg.CfgError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfg.BranchToBranch, cfgErr.Kind)
}

func TestBuildRejectsConditionalJumpBack(t *testing.T) {
	bytecode := []move.Instruction{{Op: move.OpAdd}, {Op: move.OpAdd}, brFalse(0)}

	_, err := cfg.Build(bytecode)
	require.Error(t, err)

	var cfgErr *cfg.CfgError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfg.ConditionalJumpBack, cfgErr.Kind)
}

func TestBuildRejectsSelfBranch(t *testing.T) {
	bytecode := []move.Instruction{branch(0)}

	_, err := cfg.Build(bytecode)
	require.Error(t, err)

	var cfgErr *cfg.CfgError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfg.SelfBranch, cfgErr.Kind)
}

func TestBuildRejectsOutOfBounds(t *testing.T) {
	bytecode := []move.Instruction{branch(5)}

	_, err := cfg.Build(bytecode)
	require.Error(t, err)

	var cfgErr *cfg.CfgError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfg.BranchOutOfBounds, cfgErr.Kind)
}

func TestBuildRejectsRepeatConditional(t *testing.T) {
	bytecode := append([]move.Instruction{brFalse(4), brTrue(4)}, opaque(3)...)

	_, err := cfg.Build(bytecode)
	require.Error(t, err)

	var cfgErr *cfg.CfgError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfg.RepeatConditionalBranch, cfgErr.Kind)
}

func TestLabelsAreDeterministic(t *testing.T) {
	bytecode := append(opaque(5), brFalse(7), branch(9), move.Instruction{Op: move.OpAdd}, abort(), ret())

	graph, err := cfg.Build(bytecode)
	require.NoError(t, err)

	first := graph.Labels()
	second := graph.Labels()
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Less(first[i]), "labels must be strictly increasing")
	}
}
