package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emamoah/tapehead"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tapehead",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tapehead version %s\n", tapehead.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
