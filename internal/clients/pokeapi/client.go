// Package pokeapi is the client for the PokeAPI REST data provider
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/Guilhermee36/PokeAdventure-sub000/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Guilhermee36/PokeAdventure-sub000/internal/entities/pokemon"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/errors"
	"github.com/Guilhermee36/PokeAdventure-sub000/internal/repositories/apicache"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint
	DefaultBaseURL     = "https://pokeapi.co/api/v2/"
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour

	// provider documents are small; anything bigger is not what we asked for
	maxBodyBytes = 4 << 20
)

// Client defines the interface for data provider interactions
type Client interface {
	// GetPokemon fetches types and base stats for a pokemon
	GetPokemon(ctx context.Context, name string) (*PokemonData, error)

	// GetSpecies fetches capture rate and the evolution chain reference
	GetSpecies(ctx context.Context, name string) (*SpeciesData, error)

	// GetMove fetches power and type for a move
	GetMove(ctx context.Context, name string) (*MoveData, error)

	// GetEvolutionChain fetches the chain at chainURL and parses it into
	// the typed evolution tree
	GetEvolutionChain(ctx context.Context, chainURL string) (*pokemon.EvolutionNode, error)

	// GetEncounterTable fetches a location area's wild encounter table
	GetEncounterTable(ctx context.Context, locationArea string) ([]pokemon.EncounterEntry, error)
}

// Config contains configuration options for the client.
type Config struct {
	// BaseURL defaults to DefaultBaseURL
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
	// Cache stores raw responses by URL; nil disables caching
	Cache apicache.Repository
	// CacheTTL for cached responses (optional, defaults to 24 hours)
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cache      apicache.Repository
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// New creates a new data provider client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		logger:     cfg.Logger.Named("pokeapi"),
	}, nil
}

var _ Client = (*client)(nil)

func (c *client) GetPokemon(ctx context.Context, name string) (*PokemonData, error) {
	var resp pokemonResponse
	if err := c.getJSON(ctx, c.resourceURL("pokemon", name), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", name)
	}

	data := &PokemonData{
		ID:      resp.ID,
		Name:    resp.Name,
		Species: resp.Species.Name,
		Types:   slotOrdered(resp.Types),
	}
	for _, stat := range resp.Stats {
		switch stat.Stat.Name {
		case "hp":
			data.BaseStats.HP = stat.BaseStat
		case "attack":
			data.BaseStats.Attack = stat.BaseStat
		case "defense":
			data.BaseStats.Defense = stat.BaseStat
		}
	}
	for _, m := range resp.Moves {
		data.Moves = append(data.Moves, m.Move.Name)
	}

	return data, nil
}

func (c *client) GetSpecies(ctx context.Context, name string) (*SpeciesData, error) {
	var resp speciesResponse
	if err := c.getJSON(ctx, c.resourceURL("pokemon-species", name), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get species %s", name)
	}

	data := &SpeciesData{
		ID:          resp.ID,
		Name:        resp.Name,
		CaptureRate: resp.CaptureRate,
		GenderRate:  pokemon.GenderRateGenderless,
	}
	if resp.BaseHappiness != nil {
		data.BaseHappiness = *resp.BaseHappiness
	}
	if resp.GenderRate != nil {
		data.GenderRate = *resp.GenderRate
	}
	if resp.EvolutionChain != nil {
		data.EvolutionChainURL = resp.EvolutionChain.URL
	}

	return data, nil
}

func (c *client) GetMove(ctx context.Context, name string) (*MoveData, error) {
	var resp moveResponse
	if err := c.getJSON(ctx, c.resourceURL("move", name), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get move %s", name)
	}

	data := &MoveData{
		ID:   resp.ID,
		Name: resp.Name,
		Type: pokemon.Type(resp.Type.Name),
	}
	if resp.Power != nil {
		data.Power = *resp.Power
	}

	return data, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, chainURL string) (*pokemon.EvolutionNode, error) {
	if chainURL == "" {
		return nil, errors.InvalidArgument("chain url is required")
	}

	var resp evolutionChainResponse
	if err := c.getJSON(ctx, chainURL, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get evolution chain %s", chainURL)
	}

	root, err := parseChain(&resp.Chain, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse evolution chain %s", chainURL)
	}
	return root, nil
}

func (c *client) GetEncounterTable(ctx context.Context, locationArea string) ([]pokemon.EncounterEntry, error) {
	var resp locationAreaResponse
	if err := c.getJSON(ctx, c.resourceURL("location-area", locationArea), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get location area %s", locationArea)
	}

	return convertEncounters(&resp), nil
}

func (c *client) resourceURL(resource, name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	return c.baseURL + resource + "/" + url.PathEscape(slug) + "/"
}

// getJSON decodes the document at u into target, consulting the cache first.
// Cache failures are logged and treated as misses.
func (c *client) getJSON(ctx context.Context, u string, target interface{}) error {
	if body, ok := c.cached(ctx, u); ok {
		if err := json.Unmarshal(body, target); err == nil {
			return nil
		}
		c.logger.Warn("discarding undecodable cache entry", zap.String("url", u))
		c.evict(ctx, u)
	}

	body, err := c.fetch(ctx, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode provider response").
			WithMeta("url", u)
	}

	c.store(ctx, u, body)
	return nil
}

func (c *client) fetch(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request").
			WithMeta("url", u)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(err, errors.GetCode(ctx.Err()), "request aborted").WithMeta("url", u)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi unreachable").WithMeta("url", u)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("pokeapi request",
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFound("pokeapi resource not found").WithMeta("url", u)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Unavailablef("pokeapi returned %s", resp.Status).WithMeta("url", u)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read provider response").
			WithMeta("url", u)
	}
	return body, nil
}

func (c *client) cached(ctx context.Context, u string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	out, err := c.cache.Get(ctx, &apicache.GetInput{Key: u})
	if err != nil {
		if !errors.IsNotFound(err) {
			c.logger.Warn("cache read failed", zap.String("url", u), zap.Error(err))
		}
		return nil, false
	}
	return out.Entry.Value, true
}

func (c *client) store(ctx context.Context, u string, body []byte) {
	if c.cache == nil || len(body) == 0 {
		return
	}

	if _, err := c.cache.Set(ctx, &apicache.SetInput{Key: u, Value: body, TTL: c.cacheTTL}); err != nil {
		c.logger.Warn("cache write failed", zap.String("url", u), zap.Error(err))
	}
}

func (c *client) evict(ctx context.Context, u string) {
	if _, err := c.cache.Delete(ctx, &apicache.DeleteInput{Key: u}); err != nil {
		c.logger.Warn("cache evict failed", zap.String("url", u), zap.Error(err))
	}
}

// slotOrdered returns type names sorted by slot; the provider usually sends
// them sorted already
func slotOrdered(types []typeSlot) []pokemon.Type {
	sorted := make([]typeSlot, len(types))
	copy(sorted, types)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Slot < sorted[j].Slot })

	out := make([]pokemon.Type, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, pokemon.Type(t.Type.Name))
	}
	return out
}
