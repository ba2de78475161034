package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moved-network/move2miden/compiler"
	"github.com/moved-network/move2miden/miden"
	"github.com/moved-network/move2miden/move"
	"github.com/moved-network/move2miden/opcode"
)

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <module.json>",
		Short: "Compile a Move module into Miden assembly text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			loader := move.NewJSONLoader(args[0])
			defer loader.Close()

			mod, err := loader.ReadModule()
			if err != nil {
				return fmt.Errorf("reading module: %w", err)
			}

			prog, err := compiler.CompileModule(mod, opcode.Default, log)
			if err != nil {
				return fmt.Errorf("compiling module: %w", err)
			}

			cmd.Print(miden.Print(prog))
			return nil
		},
	}
}
