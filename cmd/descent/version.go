package main

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the descent version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("descent version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
