// Package adventure implements the adventure orchestrator: it gathers data
// from the provider and the Pokémon store, asks the engine for decisions and
// writes the results back.
package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/Guilhermee36/PokeAdventure-sub000/internal/orchestrators/adventure Service

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/clients/pokeapi"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine/rpgtoolkit"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/pkg/idgen"
	pokemonrepo "github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/pokemon"
)

// Service defines the interface for adventure operations
type Service interface {
	// Explore spawns a wild Pokémon from a location area's encounter table
	Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error)

	// Attack computes the damage a trainer's Pokémon deals to a wild one
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// ThrowBall attempts a capture and stores the Pokémon on success
	ThrowBall(ctx context.Context, input *ThrowBallInput) (*ThrowBallOutput, error)

	// CheckEvolution evolves a stored Pokémon when a chain condition holds
	CheckEvolution(ctx context.Context, input *CheckEvolutionInput) (*CheckEvolutionOutput, error)

	// Release removes a Pokémon from its trainer
	Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error)
}

// Config holds the dependencies for the adventure orchestrator
type Config struct {
	Engine      engine.Engine
	Client      pokeapi.Client
	PokemonRepo pokemonrepo.Repository
	IDGenerator idgen.Generator
	// EventBus defaults to a private bus
	EventBus events.EventBus
	Logger   *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.PokemonRepo == nil {
		vb.RequiredField("PokemonRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	client      pokeapi.Client
	pokemonRepo pokemonrepo.Repository
	idGen       idgen.Generator
	eventBus    events.EventBus
	logger      *zap.Logger
}

// NewOrchestrator creates a new adventure orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		engine:      cfg.Engine,
		client:      cfg.Client,
		pokemonRepo: cfg.PokemonRepo,
		idGen:       cfg.IDGenerator,
		eventBus:    bus,
		logger:      logger.Named("adventure"),
	}, nil
}

// providerUnavailable reports errors the engine treats as missing data
func providerUnavailable(err error) bool {
	return errors.IsNotFound(err) || errors.IsUnavailable(err)
}

func (o *orchestrator) Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("trainer_id", input.TrainerID, vb)
	errors.ValidateRequired("location_area", input.LocationArea, vb)
	errors.ValidateRange("reference_level", int(input.ReferenceLevel),
		int(pokemon.MinLevel), int(pokemon.MaxLevel), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selectInput := &engine.SelectWildEncounterInput{ReferenceLevel: input.ReferenceLevel}
	table, err := o.client.GetEncounterTable(ctx, input.LocationArea)
	switch {
	case err == nil:
		selectInput.Table = table
	case providerUnavailable(err):
		o.logger.Warn("encounter table unavailable, spawning fallback",
			zap.String("location_area", input.LocationArea),
			zap.Error(err))
		selectInput.TableUnavailable = true
	default:
		return nil, errors.Wrapf(err, "failed to load encounter table for %s", input.LocationArea)
	}

	picked, err := o.engine.SelectWildEncounter(ctx, selectInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select wild encounter")
	}

	data, err := o.client.GetPokemon(ctx, picked.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load wild pokemon %s", picked.Species)
	}
	wild := wildFromData(data, picked.Level)

	o.logger.Info("wild pokemon spawned",
		zap.String("trainer_id", input.TrainerID),
		zap.String("location_area", input.LocationArea),
		zap.String("species", wild.Species),
		zap.Int32("level", wild.Level),
		zap.Bool("fallback", picked.Fallback))

	o.publish(ctx, EventPokemonSpawned,
		rpgtoolkit.WrapTrainer(input.TrainerID),
		rpgtoolkit.WrapWildSpawn(wild.Species, wild.Level),
		map[string]interface{}{
			"location_area": input.LocationArea,
			"fallback":      picked.Fallback,
		})

	return &ExploreOutput{Wild: wild, Fallback: picked.Fallback}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("attacker_id", input.AttackerID, vb)
	errors.ValidateRequired("move", input.Move, vb)
	errors.ValidateRequired("defender_species", input.DefenderSpecies, vb)
	errors.ValidateRange("defender_level", int(input.DefenderLevel),
		int(pokemon.MinLevel), int(pokemon.MaxLevel), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.pokemonRepo.Get(ctx, pokemonrepo.GetInput{ID: input.AttackerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get attacker %s", input.AttackerID)
	}
	attacker := got.Pokemon

	moveName := strings.ToLower(strings.TrimSpace(input.Move))
	if !attacker.KnowsMove(moveName) {
		return nil, errors.FailedPreconditionf("%s does not know %s", attacker.Name(), moveName).
			WithMeta("pokemon_id", attacker.ID)
	}

	moveData, err := o.client.GetMove(ctx, moveName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load move %s", moveName)
	}
	defenderData, err := o.client.GetPokemon(ctx, input.DefenderSpecies)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load defender %s", input.DefenderSpecies)
	}
	defender := wildFromData(defenderData, input.DefenderLevel)

	move := pokemon.Move{Name: moveData.Name, Power: moveData.Power, Type: moveData.Type}
	result, err := o.engine.CalculateDamage(ctx, &engine.CalculateDamageInput{
		Attacker: pokemon.Combatant{
			Level:   attacker.Level,
			Attack:  attacker.Attack,
			Defense: attacker.Defense,
			Types:   attacker.Types,
		},
		Defender: pokemon.Combatant{
			Level:   defender.Level,
			Attack:  defender.Attack,
			Defense: defender.Defense,
			Types:   defender.Types,
		},
		Move: move,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate damage")
	}

	o.logger.Debug("attack resolved",
		zap.String("attacker_id", attacker.ID),
		zap.String("move", move.Name),
		zap.String("defender", defender.Species),
		zap.Int32("damage", result.Damage),
		zap.Float64("effectiveness", result.Effectiveness))

	return &AttackOutput{
		Attacker:       attacker,
		Move:           move,
		Damage:         result.Damage,
		Effectiveness:  result.Effectiveness,
		Classification: result.Classification,
		Message:        result.Classification.Describe(),
		STAB:           result.STAB,
	}, nil
}

func (o *orchestrator) ThrowBall(ctx context.Context, input *ThrowBallInput) (*ThrowBallOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("trainer_id", input.TrainerID, vb)
	errors.ValidateRequired("species", input.Species, vb)
	errors.ValidateRange("level", int(input.Level), int(pokemon.MinLevel), int(pokemon.MaxLevel), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ballMultiplier, err := input.Ball.Multiplier()
	if err != nil {
		return nil, err
	}
	statusMultiplier, err := input.Status.Multiplier()
	if err != nil {
		return nil, err
	}

	species, err := o.client.GetSpecies(ctx, input.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load species %s", input.Species)
	}

	attempt, err := o.engine.AttemptCapture(ctx, &engine.AttemptCaptureInput{
		CaptureChanceInput: engine.CaptureChanceInput{
			CaptureRate:      species.CaptureRate,
			MaxHP:            input.MaxHP,
			CurrentHP:        input.CurrentHP,
			ToolMultiplier:   ballMultiplier,
			StatusMultiplier: statusMultiplier,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to attempt capture")
	}

	o.logger.Info("ball thrown",
		zap.String("trainer_id", input.TrainerID),
		zap.String("species", species.Name),
		zap.Float64("chance", attempt.Chance),
		zap.Bool("captured", attempt.Captured))

	if !attempt.Captured {
		return &ThrowBallOutput{Chance: attempt.Chance}, nil
	}

	data, err := o.client.GetPokemon(ctx, input.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load pokemon %s", input.Species)
	}
	wild := wildFromData(data, input.Level)

	gender, err := o.engine.RollGender(ctx, &engine.RollGenderInput{GenderRate: species.GenderRate})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll gender for %s", species.Name)
	}

	caught := &pokemon.Pokemon{
		ID:        o.idGen.Generate(),
		TrainerID: input.TrainerID,
		Species:   species.Name,
		SpeciesID: species.ID,
		Level:     input.Level,
		Happiness: species.BaseHappiness,
		Moves:     firstMoves(data.Moves),
		Gender:    gender.Gender,
		Types:     wild.Types,
		// caught Pokémon arrive healed
		MaxHP:     wild.MaxHP,
		CurrentHP: wild.MaxHP,
		Attack:    wild.Attack,
		Defense:   wild.Defense,
	}
	created, err := o.pokemonRepo.Create(ctx, pokemonrepo.CreateInput{Pokemon: caught})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store captured %s", species.Name)
	}

	o.publish(ctx, EventPokemonCaptured,
		rpgtoolkit.WrapTrainer(input.TrainerID),
		rpgtoolkit.WrapPokemon(created.Pokemon),
		map[string]interface{}{
			"ball":   string(input.Ball),
			"chance": attempt.Chance,
			"gender": string(gender.Gender),
		})

	return &ThrowBallOutput{
		Captured: true,
		Chance:   attempt.Chance,
		Pokemon:  created.Pokemon,
	}, nil
}

func (o *orchestrator) CheckEvolution(
	ctx context.Context,
	input *CheckEvolutionInput,
) (*CheckEvolutionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PokemonID == "" {
		return nil, errors.InvalidArgument("pokemon ID is required")
	}

	got, err := o.pokemonRepo.Get(ctx, pokemonrepo.GetInput{ID: input.PokemonID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", input.PokemonID)
	}
	p := got.Pokemon

	partyTypes, err := o.partyTypes(ctx, p)
	if err != nil {
		return nil, err
	}

	triggerContext := input.Context
	triggerContext.PartyTypes = partyTypes
	if input.Item != "" {
		triggerContext.Item = input.Item
	}
	checkInput := &engine.CheckEvolutionInput{
		Pokemon: p,
		Event:   input.Trigger,
		Context: triggerContext,
	}

	chain, err := o.loadChain(ctx, p.Species)
	switch {
	case err == nil:
		checkInput.Chain = chain
	case providerUnavailable(err):
		o.logger.Warn("evolution chain unavailable",
			zap.String("pokemon_id", p.ID),
			zap.String("species", p.Species),
			zap.Error(err))
		checkInput.ChainUnavailable = true
	default:
		return nil, err
	}

	decision, err := o.engine.CheckEvolution(ctx, checkInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check evolution")
	}

	out := &CheckEvolutionOutput{
		Decision:    decision.Decision,
		FromSpecies: p.Species,
		Pokemon:     p,
	}
	if decision.Decision != engine.EvolutionDecisionEvolve {
		return out, nil
	}

	evolved := *p
	evolved.Species = decision.Species
	evolved.SpeciesID = decision.SpeciesID
	if decision.Detail != nil && decision.Detail.HeldItem != "" && evolved.HeldItem == decision.Detail.HeldItem {
		evolved.HeldItem = ""
	}

	data, err := o.client.GetPokemon(ctx, decision.Species)
	if err != nil {
		// species change stands; stats catch up on the next successful lookup
		o.logger.Warn("evolved species data unavailable, keeping stats",
			zap.String("species", decision.Species),
			zap.Error(err))
	} else {
		applyStats(&evolved, data)
	}

	updated, err := o.pokemonRepo.Update(ctx, pokemonrepo.UpdateInput{Pokemon: &evolved})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store evolved pokemon %s", p.ID)
	}

	o.logger.Info("pokemon evolved",
		zap.String("pokemon_id", p.ID),
		zap.String("from", p.Species),
		zap.String("to", updated.Pokemon.Species),
		zap.String("trigger", string(input.Trigger)))

	o.publish(ctx, EventPokemonEvolved,
		rpgtoolkit.WrapTrainer(p.TrainerID),
		rpgtoolkit.WrapPokemon(updated.Pokemon),
		map[string]interface{}{
			"from":    p.Species,
			"to":      updated.Pokemon.Species,
			"trigger": string(input.Trigger),
		})

	out.Pokemon = updated.Pokemon
	return out, nil
}

func (o *orchestrator) Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("trainer_id", input.TrainerID, vb)
	errors.ValidateRequired("pokemon_id", input.PokemonID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.pokemonRepo.Get(ctx, pokemonrepo.GetInput{ID: input.PokemonID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", input.PokemonID)
	}
	p := got.Pokemon
	if p.TrainerID != input.TrainerID {
		return nil, errors.PermissionDeniedf("pokemon %s does not belong to trainer %s",
			input.PokemonID, input.TrainerID)
	}

	if _, err := o.pokemonRepo.Delete(ctx, pokemonrepo.DeleteInput{ID: p.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to release pokemon %s", p.ID)
	}

	o.logger.Info("pokemon released",
		zap.String("trainer_id", p.TrainerID),
		zap.String("pokemon_id", p.ID),
		zap.String("species", p.Species))

	o.publish(ctx, EventPokemonReleased,
		rpgtoolkit.WrapTrainer(p.TrainerID),
		rpgtoolkit.WrapPokemon(p),
		map[string]interface{}{
			"species": p.Species,
		})

	return &ReleaseOutput{Pokemon: p}, nil
}

// partyTypes collects the types of the trainer's other stored Pokémon
func (o *orchestrator) partyTypes(ctx context.Context, p *pokemon.Pokemon) ([]pokemon.Type, error) {
	party, err := o.pokemonRepo.ListByTrainer(ctx, pokemonrepo.ListByTrainerInput{TrainerID: p.TrainerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list party of trainer %s", p.TrainerID)
	}

	var types []pokemon.Type
	seen := make(map[pokemon.Type]bool)
	for _, member := range party.Pokemon {
		if member.ID == p.ID {
			continue
		}
		for _, t := range member.Types {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	return types, nil
}

func (o *orchestrator) loadChain(ctx context.Context, species string) (*pokemon.EvolutionNode, error) {
	speciesData, err := o.client.GetSpecies(ctx, species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load species %s", species)
	}
	if speciesData.EvolutionChainURL == "" {
		return nil, nil
	}

	chain, err := o.client.GetEvolutionChain(ctx, speciesData.EvolutionChainURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load evolution chain for %s", species)
	}
	return chain, nil
}

// publish emits a domain event; delivery failures never fail the operation
func (o *orchestrator) publish(
	ctx context.Context,
	eventType string,
	source, target core.Entity,
	data map[string]interface{},
) {
	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		o.logger.Warn("failed to publish event",
			zap.String("event", eventType),
			zap.String("target", target.GetID()),
			zap.Error(err))
	}
}
