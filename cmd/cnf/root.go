package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var rootFlags = struct {
	verbose *int
}{}

var rootCmd = &cobra.Command{
	Use:   "cnf",
	Short: "Convert a context-free grammar to Chomsky normal form",
	Long: `cnf converts a context-free grammar to Chomsky normal form:
every production becomes either a pair of variables or a single terminal,
with an ε-production allowed on the start variable only.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(*rootFlags.verbose, nil)
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().CountP("verbose", "v", "increase logging verbosity; repeat for per-stage rule listings")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
