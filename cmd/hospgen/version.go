package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show hospgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hospgen %s\n", Version)
	},
}
