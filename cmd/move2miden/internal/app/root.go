// Package app wires the move2miden CLI's subcommands.
package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// NewRootCmd builds the move2miden root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "move2miden",
		Short:         "Compile Move bytecode modules into Miden assembly",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	root.AddCommand(newCompileCmd())
	root.AddCommand(newCFGCmd())
	return root
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
