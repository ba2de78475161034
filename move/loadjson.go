package move

import (
	"encoding/json"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Reader is the module-loader boundary named in spec.md §1 and §6: the real
// job of parsing a Move binary into a CompiledModule belongs to a module
// loader, which is out of scope for this repository. Reader is the seam a
// real loader would implement; JSONLoader below is a deliberate stand-in, not
// a Move binary-format parser.
type Reader interface {
	ReadModule() (*CompiledModule, error)
}

// jsonModule is the on-disk shape JSONLoader reads. It mirrors
// CompiledModule field-for-field; instructions are encoded as
// [opcode, dest, imm] triples to keep the stand-in format terse.
type jsonModule struct {
	Functions []jsonFunction `json:"functions"`
	Context   jsonContext    `json:"context"`
}

type jsonFunction struct {
	NameIndex      int        `json:"name_index"`
	SignatureIndex int        `json:"signature_index"`
	IsEntry        bool       `json:"is_entry"`
	Code           [][3]int64 `json:"code"`
}

type jsonContext struct {
	FunctionNames []string    `json:"function_names"`
	Signatures    []Signature `json:"signatures"`
	Constants     []uint64    `json:"constants"`
}

// JSONLoader reads a CompiledModule from the JSON stand-in format, decoding
// it straight from a read-only memory mapping of the backing file. The
// decoded move.Instruction slices are ordinary Go allocations; they do not
// point into the mapped region. Close unmaps and closes the file.
type JSONLoader struct {
	path string
	mm   mmap.MMap
	f    *os.File
}

// NewJSONLoader opens path for reading but does not map it yet; call
// ReadModule to perform the mapping and decode.
func NewJSONLoader(path string) *JSONLoader {
	return &JSONLoader{path: path}
}

// ReadModule memory-maps the file at l.path and decodes it as the JSON
// stand-in module format.
func (l *JSONLoader) ReadModule() (*CompiledModule, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.f = f
	l.mm = mm

	var raw jsonModule
	if err := json.Unmarshal([]byte(mm), &raw); err != nil {
		return nil, err
	}

	mod := &CompiledModule{
		Context: ModuleContext{
			FunctionNames: raw.Context.FunctionNames,
			Signatures:    raw.Context.Signatures,
			Constants:     raw.Context.Constants,
		},
	}
	for _, fn := range raw.Functions {
		def := FunctionDefinition{
			NameIndex:      fn.NameIndex,
			SignatureIndex: fn.SignatureIndex,
			IsEntry:        fn.IsEntry,
		}
		if fn.Code != nil {
			def.Code = make([]Instruction, len(fn.Code))
			for i, triple := range fn.Code {
				def.Code[i] = Instruction{
					Op:   Opcode(triple[0]),
					Dest: int(triple[1]),
					Imm:  uint64(triple[2]),
				}
			}
		}
		mod.Functions = append(mod.Functions, def)
	}
	return mod, nil
}

// Close unmaps the underlying file and closes it.
func (l *JSONLoader) Close() error {
	if l.mm != nil {
		if err := l.mm.Unmap(); err != nil {
			return err
		}
		l.mm = nil
	}
	if l.f != nil {
		return l.f.Close()
	}
	return nil
}
