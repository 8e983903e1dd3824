package cmd

import (
	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show jarvis-tokens version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd)
		u.Info("Version: %s", VERSION)
		u.Info("Contact author at: @tranvictor on Telegram")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
