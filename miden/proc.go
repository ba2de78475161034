package miden

// ProcedureName is a procedure identifier. Real Miden assembly constrains
// these (character set, length); this type is a plain string and performs
// no validation of its own.
type ProcedureName string

// MainName is the reserved name of a program's entrypoint procedure.
const MainName ProcedureName = "main"

// ProcedureAst is one compiled Move function, translated into a Miden
// procedure body.
type ProcedureAst struct {
	Name      ProcedureName
	NumLocals int
	Body      []Node
	IsExport  bool
}

// ProgramAst is a whole compiled module: the entrypoint procedure plus every
// other function of the module as a local procedure, in the same order as
// the module's function definitions so that Call-by-index references line up
// (spec.md §6, module-level driver).
type ProgramAst struct {
	Main  ProcedureAst
	Procs []ProcedureAst
}
