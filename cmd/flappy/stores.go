package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List score storage backends",
	Long:  `Shows the score storage backends that can be picked with --store.`,
	Args:  cobra.NoArgs,
	Run:   runStores,
}

func runStores(_ *cobra.Command, _ []string) {
	stores := registry.List()

	if len(stores) == 0 {
		fmt.Println("No score stores available.")
		return
	}

	fmt.Println("Available score stores:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range stores {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range stores {
		marker := ""
		if s.Name == flagStore {
			marker = " (selected)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, s.Name, s.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --store <name>' to use a store.")
}
