package move

// Signature is a stand-in for a Move function signature (parameter and
// return types). Local-variable lowering and type checking are out of scope
// (spec.md §1), so the field is left as an opaque count rather than a real
// type vector.
type Signature struct {
	ParamCount  int
	LocalCount  int
	ReturnCount int
}

// FunctionDefinition is one function inside a compiled module.
type FunctionDefinition struct {
	// NameIndex indexes into ModuleContext.FunctionNames.
	NameIndex int
	// SignatureIndex indexes into ModuleContext.Signatures. A nil Code means
	// this is a native/external function with no body to compile.
	SignatureIndex int
	Code           []Instruction
	IsEntry        bool
}

// ModuleContext carries the surrounding information compile_function needs
// that isn't local to a single function: the function-index → name table,
// the signature pool, and (for completeness with spec.md §6) a constant
// pool. None of these are interpreted by the CFG/emitter core or by the
// opcode translator; the compiler package uses the name table and the
// signature pool to name procedures and count their locals.
type ModuleContext struct {
	FunctionNames []string
	Signatures    []Signature
	Constants     []uint64
}

// CompiledModule is a full module: its function definitions plus the shared
// context they were compiled against.
type CompiledModule struct {
	Functions []FunctionDefinition
	Context   ModuleContext
}

// FunctionName resolves a function definition's display name via its handle
// index into the module's name table.
func (m *ModuleContext) FunctionName(index int) (string, bool) {
	if index < 0 || index >= len(m.FunctionNames) {
		return "", false
	}
	return m.FunctionNames[index], true
}

// Signature resolves a function definition's signature via its signature
// pool index.
func (m *ModuleContext) Signature(index int) (Signature, bool) {
	if index < 0 || index >= len(m.Signatures) {
		return Signature{}, false
	}
	return m.Signatures[index], true
}
