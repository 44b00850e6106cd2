package main

import (
	"github.com/aretw0/screenstack/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [menu.yaml]",
	Short: "Run an interactive menu session",
	Long:  `Loads a menu definition and runs it on stdin/stdout until the user stops navigating.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{}
		opts.MenuPath, _ = cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			opts.MenuPath = args[0]
		}
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Plain, _ = cmd.Flags().GetBool("plain")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.TracePath, _ = cmd.Flags().GetString("trace")
		if cmd.Flags().Changed("delay") {
			delay, _ := cmd.Flags().GetDuration("delay")
			opts.Delay = &delay
		}
		opts.In = cmd.InOrStdin()
		opts.Out = cmd.OutOrStdout()
		opts.Err = cmd.ErrOrStderr()

		return cli.RunSession(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("delay", 0, "Override the menu's animation delay (e.g. 0s, 500ms)")
	runCmd.Flags().Bool("debug", false, "Log session events to stderr")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering, colours and the banner")
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")
	runCmd.Flags().String("trace", "", "Write a Mermaid diagram highlighting the visited screens to this file")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")

	// 'run' is the default command.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
