// Package client provides test commands for the PokeAdventure gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/handlers/pokeadventure/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for PokeAdventure",
	Long:  `Client commands exercise a running server by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(exploreCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(throwBallCmd)
	ClientCmd.AddCommand(evolveCmd)
	ClientCmd.AddCommand(releaseCmd)
}

// createAdventureClient dials the server and returns a JSON-codec client
func createAdventureClient() (v1alpha1.AdventureServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewAdventureServiceClient(conn), cleanup, nil
}
