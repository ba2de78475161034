// Package compiler wires together the CFG builder, the structured emitter
// and the opcode translator into the two entry points external callers use
// (spec.md §6): CompileFunction for a single function, and CompileModule for
// a whole module.
package compiler

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/moved-network/move2miden/cfg"
	"github.com/moved-network/move2miden/emit"
	"github.com/moved-network/move2miden/miden"
	"github.com/moved-network/move2miden/move"
	"github.com/moved-network/move2miden/opcode"
)

// emptyProcedure mirrors the original compiler.rs's empty_proc: the
// procedure emitted for a function definition with no code (an
// external/native function).
func emptyProcedure(name miden.ProcedureName) miden.ProcedureAst {
	return miden.ProcedureAst{Name: name, Body: nil}
}

// CompileFunction compiles one function definition against its surrounding
// module context (spec.md §6). translate is the pluggable opcode translator
// (C7); pass opcode.Default for the reference behavior.
func CompileFunction(fn move.FunctionDefinition, ctx *move.ModuleContext, translate opcode.Func, log *zap.Logger) (miden.ProcedureAst, error) {
	name, ok := ctx.FunctionName(fn.NameIndex)
	if !ok {
		return miden.ProcedureAst{}, errors.Wrapf(ErrMissingFunctionHandle, "name index %d", fn.NameIndex)
	}
	procName := miden.ProcedureName(name)

	if fn.Code == nil {
		log.Debug("compiling native function stub", zap.String("function", name))
		return emptyProcedure(procName), nil
	}

	sig, ok := ctx.Signature(fn.SignatureIndex)
	if !ok {
		return miden.ProcedureAst{}, errors.Wrapf(ErrMissingSignature, "signature index %d", fn.SignatureIndex)
	}

	graph, err := cfg.Build(fn.Code)
	if err != nil {
		return miden.ProcedureAst{}, errors.Wrapf(err, "building CFG for %q", name)
	}

	body, err := emit.Emit(graph, cfg.EntryLabel(), cfg.ExitLabel(), translate)
	if err != nil {
		return miden.ProcedureAst{}, errors.Wrapf(err, "emitting %q", name)
	}

	log.Debug("compiled function",
		zap.String("function", name),
		zap.Int("locals", sig.LocalCount),
		zap.Int("nodes", len(body)),
	)

	return miden.ProcedureAst{
		Name:      procName,
		NumLocals: sig.LocalCount,
		Body:      body,
		IsExport:  fn.IsEntry,
	}, nil
}
