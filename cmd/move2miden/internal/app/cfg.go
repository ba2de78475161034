package app

import (
	"fmt"

	"github.com/spf13/cobra"

	movecfg "github.com/moved-network/move2miden/cfg"
	"github.com/moved-network/move2miden/move"
)

func newCFGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cfg <module.json> <function>",
		Short: "Dump the blocks and edges of one function's control flow graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := move.NewJSONLoader(args[0])
			defer loader.Close()

			mod, err := loader.ReadModule()
			if err != nil {
				return fmt.Errorf("reading module: %w", err)
			}

			fnName := args[1]
			fn, ok := findFunction(mod, fnName)
			if !ok {
				return fmt.Errorf("no such function %q", fnName)
			}
			if fn.Code == nil {
				return fmt.Errorf("function %q has no body to build a CFG from", fnName)
			}

			graph, err := movecfg.Build(fn.Code)
			if err != nil {
				return fmt.Errorf("building CFG: %w", err)
			}

			for _, l := range graph.Labels() {
				block, _ := graph.Block(l)
				cmd.Printf("%s: %d instructions\n", l, len(block.Code))
				if edge, ok := graph.Edge(l); ok {
					cmd.Printf("  -> %#v\n", edge)
				}
			}
			return nil
		},
	}
}

func findFunction(mod *move.CompiledModule, name string) (move.FunctionDefinition, bool) {
	for _, fn := range mod.Functions {
		if n, ok := mod.Context.FunctionName(fn.NameIndex); ok && n == name {
			return fn, true
		}
	}
	return move.FunctionDefinition{}, false
}
