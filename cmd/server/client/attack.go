package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

var attackCmd = &cobra.Command{
	Use:   "attack [pokemon-id] [move] [defender-species] [defender-level]",
	Short: "Calculate the damage of one move",
	Long: `Use a known move against a wild Pokémon. Example:

  attack pkmn_123 thunderbolt gyarados 20`,
	Args: cobra.ExactArgs(4),
	RunE: attack,
}

func attack(_ *cobra.Command, args []string) error {
	level, err := strconv.ParseInt(args[3], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid defender level %q: %w", args[3], err)
	}

	client, cleanup, err := createAdventureClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Attack(ctx, &v1alpha1.AttackRequest{
		AttackerID:      args[0],
		Move:            args[1],
		DefenderSpecies: args[2],
		DefenderLevel:   int32(level),
	})
	if err != nil {
		return fmt.Errorf("failed to attack: %w", err)
	}

	fmt.Printf("Used %s (%s)!\n", pokemon.DisplayName(resp.Move), pokemon.DisplayName(resp.MoveType))
	if resp.Message != "" {
		fmt.Println(resp.Message)
	}
	fmt.Printf("  Damage: %d\n", resp.Damage)
	fmt.Printf("  Effectiveness: x%g\n", resp.Effectiveness)
	if resp.STAB {
		fmt.Printf("  Same-type attack bonus applied\n")
	}

	return nil
}
