// Package main implements the tend CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tend",
	Short:         "Tend - a personal task tracker",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var rootTasksFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootTasksFile, "file", "", "Task file to use (overrides config)")
}
