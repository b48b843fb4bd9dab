// Package engine implements the day-advancement simulation core of the
// market career game: price movement, narrative selection, chain and story
// state machines, startup investments, financial resolution, and the
// encounter gate, sequenced into one atomic per-day transition.
package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"market-tycoon/internal/catalog"
	"market-tycoon/internal/config"
	"market-tycoon/internal/models"
	"market-tycoon/pkg/utils"
)

// minPrice is the hard floor for every asset price.
const minPrice = 0.01

// Engine runs the simulation over an explicit State value. It holds only
// immutable collaborators; all mutable game state lives in the State owned by
// the host layer.
type Engine struct {
	catalog *catalog.Catalog
	cfg     *config.Config
	rng     RNG
	log     zerolog.Logger
}

// New creates an engine from its collaborators.
func New(cat *catalog.Catalog, cfg *config.Config, rng RNG, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: cat,
		cfg:     cfg,
		rng:     rng,
		log:     logger,
	}
}

// Catalog returns the engine's reference data.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// StartGame creates the aggregate for a fresh run with deterministic initial
// values plus randomized starting prices.
func (e *Engine) StartGame(duration int) *State {
	if duration < 1 {
		duration = e.cfg.Game.DefaultDuration
	}

	s := &State{
		GameID:       uuid.NewString(),
		Day:          0,
		Duration:     duration,
		Cash:         e.cfg.Game.StartingCash,
		StartingCash: e.cfg.Game.StartingCash,
		Holdings:     make(map[string]int),
		CostBasis:    make(map[string]float64),
		Prices:       make(map[string]float64),
		PrevCloses:   make(map[string]float64),
		Candles:      make(map[string][]models.Candle),
		UsedChains:   make(map[string]bool),
		UsedStories:  make(map[string]bool),
		UsedStartups: make(map[string]bool),
		Encounters: models.EncounterState{
			OneShot: make(map[models.EncounterType]bool),
		},
		Status: models.GameRunning,
	}

	for _, a := range e.catalog.Assets {
		price := utils.RoundCents(a.BasePrice * (1 + symmetric(e.rng, 0.10)))
		if price < minPrice {
			price = minPrice
		}
		s.Prices[a.ID] = price
		s.PrevCloses[a.ID] = price
		s.Candles[a.ID] = []models.Candle{{
			Day: 0, Open: price, High: price, Low: price, Close: price,
		}}
	}

	s.Ledger = s.Cash
	e.log.Info().
		Str("game_id", s.GameID).
		Int("duration", duration).
		Float64("starting_cash", s.Cash).
		Msg("Game started")
	return s
}
