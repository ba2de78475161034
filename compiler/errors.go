package compiler

import "errors"

// ErrMissingFunctionHandle is returned when a function definition's name
// index has no corresponding entry in the module's function-name table.
// Call targets are not checked against that table.
var ErrMissingFunctionHandle = errors.New("compiler: missing function handle index")

// ErrMissingSignature is returned when a function definition's signature
// index has no corresponding entry in the module's signature pool.
var ErrMissingSignature = errors.New("compiler: missing signature index")

// ErrNoEntrypoint is returned by CompileModule when no function is marked
// is_entry.
var ErrNoEntrypoint = errors.New("compiler: no entry point defined")

// ErrMultipleEntrypoints is returned by CompileModule when more than one
// function is marked is_entry.
var ErrMultipleEntrypoints = errors.New("compiler: cannot handle multiple entrypoints")
