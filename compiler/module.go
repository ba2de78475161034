package compiler

import (
	"go.uber.org/zap"

	"github.com/moved-network/move2miden/miden"
	"github.com/moved-network/move2miden/move"
	"github.com/moved-network/move2miden/opcode"
)

// mainPlaceholderName replaces main's original slot in the local-procedure
// list so that numerical local-procedure indices used by Call instructions
// remain stable (spec.md §6), carried over verbatim from the original
// compiler's MAIN_NAME_REPLACEMENT constant.
const mainPlaceholderName miden.ProcedureName = "dummy_name_in_place_of_main"

// CompileModule iterates over a module's function definitions, compiles
// each one, identifies the unique entrypoint, places it as main, and
// collects the others as local procedures (spec.md §6, module-level
// driver). A placeholder procedure replaces main's original slot.
func CompileModule(mod *move.CompiledModule, translate opcode.Func, log *zap.Logger) (miden.ProgramAst, error) {
	var (
		procs      []miden.ProcedureAst
		main       *miden.ProcedureAst
		mainFnName string
	)

	for _, fn := range mod.Functions {
		proc, err := CompileFunction(fn, &mod.Context, translate, log)
		if err != nil {
			return miden.ProgramAst{}, err
		}

		if fn.IsEntry {
			if main != nil {
				return miden.ProgramAst{}, ErrMultipleEntrypoints
			}
			name := proc.Name
			proc.Name = miden.MainName
			m := proc
			main = &m
			mainFnName = string(name)
			procs = append(procs, emptyProcedure(mainPlaceholderName))
			continue
		}
		procs = append(procs, proc)
	}

	if main == nil {
		return miden.ProgramAst{}, ErrNoEntrypoint
	}

	log.Info("compiled module",
		zap.String("entrypoint", mainFnName),
		zap.Int("procedures", len(procs)),
	)

	return miden.ProgramAst{Main: *main, Procs: procs}, nil
}
