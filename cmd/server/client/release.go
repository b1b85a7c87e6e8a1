package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

var releaseCmd = &cobra.Command{
	Use:   "release [trainer-id] [pokemon-id]",
	Short: "Release a stored Pokémon",
	Args:  cobra.ExactArgs(2),
	RunE:  release,
}

func release(_ *cobra.Command, args []string) error {
	client, cleanup, err := createAdventureClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Release(ctx, &v1alpha1.ReleaseRequest{
		TrainerID: args[0],
		PokemonID: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to release pokemon: %w", err)
	}

	if resp.Pokemon != nil {
		fmt.Printf("%s was released. Bye-bye!\n", pokemon.DisplayName(resp.Pokemon.Species))
	}
	return nil
}
