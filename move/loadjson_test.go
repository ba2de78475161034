package move_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moved-network/move2miden/move"
)

func writeModule(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "module.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestJSONLoaderRoundTrip(t *testing.T) {
	path := writeModule(t, `{
		"functions": [
			{"name_index": 0, "signature_index": 0, "is_entry": true, "code": [[6, 0, 0], [4, 0, 0]]}
		],
		"context": {
			"function_names": ["run"],
			"signatures": [{"ParamCount": 0, "LocalCount": 0, "ReturnCount": 0}],
			"constants": [1, 2, 3]
		}
	}`)

	loader := move.NewJSONLoader(path)
	defer loader.Close()

	mod, err := loader.ReadModule()
	require.NoError(t, err)

	require.Len(t, mod.Functions, 1)
	fn := mod.Functions[0]
	assert.True(t, fn.IsEntry)
	require.Len(t, fn.Code, 2)
	assert.Equal(t, move.OpAdd, fn.Code[0].Op)
	assert.Equal(t, move.OpRet, fn.Code[1].Op)

	name, ok := mod.Context.FunctionName(0)
	require.True(t, ok)
	assert.Equal(t, "run", name)

	sig, ok := mod.Context.Signature(0)
	require.True(t, ok)
	assert.Equal(t, move.Signature{}, sig)
}

func TestJSONLoaderNativeFunctionHasNilCode(t *testing.T) {
	path := writeModule(t, `{
		"functions": [
			{"name_index": 0, "signature_index": 0, "is_entry": false, "code": null}
		],
		"context": {"function_names": ["native_fn"], "signatures": [{}]}
	}`)

	loader := move.NewJSONLoader(path)
	defer loader.Close()

	mod, err := loader.ReadModule()
	require.NoError(t, err)
	assert.Nil(t, mod.Functions[0].Code)
}

func TestJSONLoaderMissingFile(t *testing.T) {
	loader := move.NewJSONLoader(filepath.Join(t.TempDir(), "does-not-exist.json"))
	_, err := loader.ReadModule()
	assert.Error(t, err)
}

func TestModuleContextOutOfRangeLookups(t *testing.T) {
	ctx := move.ModuleContext{FunctionNames: []string{"a"}, Signatures: []move.Signature{{}}}

	_, ok := ctx.FunctionName(5)
	assert.False(t, ok)

	_, ok = ctx.Signature(-1)
	assert.False(t, ok)
}
