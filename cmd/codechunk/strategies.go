package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codechunk/schema"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List available chunking strategies",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, strategy := range schema.Strategies() {
			fmt.Fprintln(cmd.OutOrStdout(), string(strategy))
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
