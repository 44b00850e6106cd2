package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screenstack",
	Short: "ScreenStack runs interactive menus as stacks of screens",
	Long: `ScreenStack drives line-oriented terminal menus: every screen prompts, reads a line
and reacts by pushing or popping screens on a navigation stack.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "Menu definition (YAML); the built-in demo is used when empty")
}
