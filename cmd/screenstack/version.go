package main

import (
	"fmt"

	"github.com/aretw0/screenstack"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of screenstack",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "screenstack version %s\n", screenstack.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
