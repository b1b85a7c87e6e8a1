package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

var (
	item      string
	timeOfDay string
	location  string
)

var evolveCmd = &cobra.Command{
	Use:   "evolve [pokemon-id] [level-up|item-use]",
	Short: "Check whether a Pokémon evolves",
	Long: `Run an evolution check for a stored Pokémon. Examples:

  evolve pkmn_123 level-up --time-of-day day
  evolve pkmn_123 item-use --item water-stone`,
	Args: cobra.ExactArgs(2),
	RunE: evolve,
}

func init() {
	evolveCmd.Flags().StringVar(&item, "item", "", "Item used on the Pokémon")
	evolveCmd.Flags().StringVar(&timeOfDay, "time-of-day", "", "day, night or dusk")
	evolveCmd.Flags().StringVar(&location, "location", "", "Current location")
}

func evolve(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdventureClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CheckEvolution(ctx, &v1alpha1.CheckEvolutionRequest{
		PokemonID: args[0],
		Trigger:   args[1],
		Item:      item,
		TimeOfDay: timeOfDay,
		Location:  location,
	})
	if err != nil {
		return fmt.Errorf("failed to check evolution: %w", err)
	}

	switch resp.Decision {
	case "evolve":
		fmt.Printf("What? %s is evolving!\n", pokemon.DisplayName(resp.FromSpecies))
		if resp.Pokemon != nil {
			fmt.Printf("Congratulations! It evolved into %s!\n\n", pokemon.DisplayName(resp.Pokemon.Species))
		}
		printPokemon(resp.Pokemon)
	case "undecided":
		fmt.Printf("Evolution data is unavailable right now. Try again later.\n")
	default:
		fmt.Printf("Nothing happened.\n")
	}

	return nil
}
