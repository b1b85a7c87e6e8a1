package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

var referenceLevel int32

var exploreCmd = &cobra.Command{
	Use:   "explore [trainer-id] [location-area]",
	Short: "Look for a wild Pokémon",
	Long: `Explore a location area and report the wild Pokémon that appears. Example:

  explore ash kanto-route-1-area --level 5`,
	Args: cobra.ExactArgs(2),
	RunE: explore,
}

func init() {
	exploreCmd.Flags().Int32Var(&referenceLevel, "level", 5, "Reference level used when the area has no table")
}

func explore(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdventureClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Exploring %s...\n", args[1])

	resp, err := client.Explore(ctx, &v1alpha1.ExploreRequest{
		TrainerID:      args[0],
		LocationArea:   args[1],
		ReferenceLevel: referenceLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to explore: %w", err)
	}

	fmt.Printf("\nA wild Pokémon appeared!\n")
	printWild(resp.Wild)
	if resp.Fallback {
		fmt.Printf("  (no encounter table for this area)\n")
	}

	return nil
}
