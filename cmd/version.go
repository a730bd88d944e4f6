package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvheim/fkit/pkg/runtime"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Long:  `Print version info`,
	Example: `  fkit version
  fkit version --help`,

	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("fkit version: %s commit: %s built at: %s\n", runtime.Version, runtime.GitCommit, runtime.Timestamp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
