package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

var (
	ball      string
	status    string
	maxHP     int32
	currentHP int32
)

var throwBallCmd = &cobra.Command{
	Use:   "throw-ball [trainer-id] [species] [level]",
	Short: "Try to catch a wild Pokémon",
	Long: `Throw a ball at a wild Pokémon. Examples:

  throw-ball ash pidgey 3 --max-hp 15 --current-hp 4
  throw-ball ash abra 10 --max-hp 30 --current-hp 30 --ball ultra-ball --status sleep`,
	Args: cobra.ExactArgs(3),
	RunE: throwBall,
}

func init() {
	throwBallCmd.Flags().StringVar(&ball, "ball", "poke-ball", "Ball to throw")
	throwBallCmd.Flags().StringVar(&status, "status", "", "Status condition of the target")
	throwBallCmd.Flags().Int32Var(&maxHP, "max-hp", 20, "Target max HP")
	throwBallCmd.Flags().Int32Var(&currentHP, "current-hp", 20, "Target current HP")
}

func throwBall(_ *cobra.Command, args []string) error {
	level, err := strconv.ParseInt(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid level %q: %w", args[2], err)
	}

	client, cleanup, err := createAdventureClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Throwing a %s at %s...\n", pokemon.DisplayName(ball), pokemon.DisplayName(args[1]))

	resp, err := client.ThrowBall(ctx, &v1alpha1.ThrowBallRequest{
		TrainerID: args[0],
		Species:   args[1],
		Level:     int32(level),
		MaxHP:     maxHP,
		CurrentHP: currentHP,
		Ball:      ball,
		Status:    status,
	})
	if err != nil {
		return fmt.Errorf("failed to throw ball: %w", err)
	}

	fmt.Printf("  Catch chance: %.1f%%\n", resp.Chance*100)
	if !resp.Captured {
		fmt.Printf("\nOh no! The Pokémon broke free!\n")
		return nil
	}

	fmt.Printf("\nGotcha! The Pokémon was caught!\n")
	printPokemon(resp.Pokemon)

	return nil
}
