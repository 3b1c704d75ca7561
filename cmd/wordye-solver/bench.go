package main

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordye/internal/cli"
	"github.com/robalobadob/wordye/internal/config"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve every answer and print the turn distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		list := loadList(cfg)
		return cli.RunBench(cfg, list, cli.NewRenderer(cmd.OutOrStdout()), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
}
