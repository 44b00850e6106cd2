package main

import (
	"fmt"

	"github.com/aretw0/screenstack/internal/cli"
	"github.com/aretw0/screenstack/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [menu.yaml]",
	Short: "Export the menu as a Mermaid diagram",
	Long:  `Loads a menu definition and prints a Mermaid flowchart (graph TD) of its screens and options.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}
		def, err := cli.LoadMenu(path)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(def, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
