// Command move2miden compiles a Move module (in the JSON stand-in format,
// see package move) into Miden assembly text, or dumps the control flow
// graph of a single function for debugging — the analogue of wagon's
// wasm-dump -d for this compiler.
package main

import (
	"fmt"
	"os"

	"github.com/moved-network/move2miden/cmd/move2miden/internal/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
