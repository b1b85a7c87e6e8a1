// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Guilhermee36/PokeAdventure-sub000/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokeadventure",
	Short: "PokeAdventure gRPC Server",
	Long:  `PokeAdventure provides a gRPC interface for exploring, battling, catching and evolving Pokémon.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
