package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reelsim/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all machine presets",
	Long:  `Shows a list of all slot machine presets registered in reelsim.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No machines available.")
		return
	}

	fmt.Println("Available machines:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'reelsim play <id>' to play a machine.")
}
