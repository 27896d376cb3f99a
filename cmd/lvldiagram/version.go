package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvldiagram"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lvldiagram",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lvldiagram version %s\n", strings.TrimSpace(lvldiagram.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
