// Package errors provides the structured error type used across pokeadventure.
//
// Every error carries a Code, a caller-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC and HTTP statuses so handlers can convert
// without inspecting messages.
//
// Creating errors:
//
//	err := errors.NotFound("pokemon not found")
//	err := errors.InvalidArgumentf("level %d out of range", level)
//
// Adding metadata:
//
//	err := errors.NotFound("pokemon not found").
//	    WithMeta("pokemon_id", id).
//	    WithMeta("trainer_id", trainerID)
//
// Wrapping keeps the original code unless one is given explicitly:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load attacker")
//	}
//
//	if resp.StatusCode >= 500 {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi unavailable")
//	}
//
// # Validation
//
// Field problems are collected and reported together:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", input.Level, 1, 100, vb)
//	errors.ValidateRequired("species", input.Species, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer guidelines
//
// The rules engine returns InvalidArgument for contract violations by its
// caller and never returns an error for an expected negative outcome (no
// evolution, failed capture, immune target, fallback spawn).
//
// The pokeapi client returns NotFound for missing resources and Unavailable
// for transport or server failures. The orchestrator decides which of those
// degrade to defaults.
//
// Handlers convert with ToGRPCError; metadata travels as a
// google.protobuf.Struct status detail.
package errors
