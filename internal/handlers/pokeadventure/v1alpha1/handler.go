// Package v1alpha1 handles the grpc adventure service interface
package v1alpha1

import (
	"context"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/orchestrators/adventure"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	AdventureService adventure.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.AdventureService == nil {
		return errors.InvalidArgument("adventure service is required")
	}
	return nil
}

// Handler implements the adventure gRPC service
type Handler struct {
	UnimplementedAdventureServiceServer
	adventureService adventure.Service
}

var _ AdventureServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		adventureService: cfg.AdventureService,
	}, nil
}

// Explore spawns a wild Pokémon
func (h *Handler) Explore(ctx context.Context, req *ExploreRequest) (*ExploreResponse, error) {
	output, err := h.adventureService.Explore(ctx, &adventure.ExploreInput{
		TrainerID:      req.TrainerID,
		LocationArea:   req.LocationArea,
		ReferenceLevel: req.ReferenceLevel,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExploreResponse{
		Wild:     convertWildToMessage(output.Wild),
		Fallback: output.Fallback,
	}, nil
}

// Attack resolves one move against a wild Pokémon
func (h *Handler) Attack(ctx context.Context, req *AttackRequest) (*AttackResponse, error) {
	output, err := h.adventureService.Attack(ctx, &adventure.AttackInput{
		AttackerID:      req.AttackerID,
		Move:            req.Move,
		DefenderSpecies: req.DefenderSpecies,
		DefenderLevel:   req.DefenderLevel,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AttackResponse{
		Move:           output.Move.Name,
		MoveType:       string(output.Move.Type),
		Damage:         output.Damage,
		Effectiveness:  output.Effectiveness,
		Classification: string(output.Classification),
		Message:        output.Message,
		STAB:           output.STAB,
	}, nil
}

// ThrowBall attempts a capture
func (h *Handler) ThrowBall(ctx context.Context, req *ThrowBallRequest) (*ThrowBallResponse, error) {
	output, err := h.adventureService.ThrowBall(ctx, &adventure.ThrowBallInput{
		TrainerID: req.TrainerID,
		Species:   req.Species,
		Level:     req.Level,
		MaxHP:     req.MaxHP,
		CurrentHP: req.CurrentHP,
		Ball:      adventure.Ball(req.Ball),
		Status:    adventure.Status(req.Status),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ThrowBallResponse{
		Captured: output.Captured,
		Chance:   output.Chance,
		Pokemon:  convertPokemonToMessage(output.Pokemon),
	}, nil
}

// CheckEvolution evolves a stored Pokémon when its chain allows it
func (h *Handler) CheckEvolution(
	ctx context.Context,
	req *CheckEvolutionRequest,
) (*CheckEvolutionResponse, error) {
	output, err := h.adventureService.CheckEvolution(ctx, &adventure.CheckEvolutionInput{
		PokemonID: req.PokemonID,
		Trigger:   pokemon.TriggerEvent(req.Trigger),
		Item:      req.Item,
		Context: pokemon.TriggerContext{
			TimeOfDay: req.TimeOfDay,
			Location:  req.Location,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CheckEvolutionResponse{
		Decision:    string(output.Decision),
		FromSpecies: output.FromSpecies,
		Pokemon:     convertPokemonToMessage(output.Pokemon),
	}, nil
}

// Release removes a Pokémon owned by the requesting trainer
func (h *Handler) Release(ctx context.Context, req *ReleaseRequest) (*ReleaseResponse, error) {
	output, err := h.adventureService.Release(ctx, &adventure.ReleaseInput{
		TrainerID: req.TrainerID,
		PokemonID: req.PokemonID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ReleaseResponse{
		Pokemon: convertPokemonToMessage(output.Pokemon),
	}, nil
}
