// Package main is the entry point for the quest API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quest-api",
	Short: "Quest API Server",
	Long:  `Quest API serves the progression and rules engine for the educational RPG: XP and leveling, achievements, quests, and game sessions.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
