package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/engine"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
)

type matchupResponse struct {
	Attack         pokemon.Type   `json:"attack"`
	Defend         []pokemon.Type `json:"defend"`
	Multiplier     float64        `json:"multiplier"`
	Classification string         `json:"classification,omitempty"`
	Message        string         `json:"message,omitempty"`
}

// newHTTPRouter serves health and a read-only view of the effective type chart
func newHTTPRouter(chart *engine.TypeChart, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	router.Get("/typechart", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusOK, chart.Matchups())
	})

	// /typechart/fire/grass or /typechart/ice/dragon,flying
	router.Get("/typechart/{attack}/{defend}", func(w http.ResponseWriter, r *http.Request) {
		attack, ok := pokemon.ParseType(chi.URLParam(r, "attack"))
		if !ok {
			http.Error(w, "unknown attack type", http.StatusBadRequest)
			return
		}

		var defenders []pokemon.Type
		for _, name := range strings.Split(chi.URLParam(r, "defend"), ",") {
			if name == "" {
				continue
			}
			t, ok := pokemon.ParseType(name)
			if !ok {
				http.Error(w, "unknown defend type "+name, http.StatusBadRequest)
				return
			}
			defenders = append(defenders, t)
		}
		if len(defenders) == 0 || len(defenders) > 2 {
			http.Error(w, "expected one or two defend types", http.StatusBadRequest)
			return
		}

		multiplier := chart.Effectiveness(attack, defenders)
		classification := engine.Classify(multiplier)
		writeJSON(w, logger, http.StatusOK, matchupResponse{
			Attack:         attack,
			Defend:         defenders,
			Multiplier:     multiplier,
			Classification: string(classification),
			Message:        classification.Describe(),
		})
	})

	return router
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to encode response", zap.Error(err))
	}
}
