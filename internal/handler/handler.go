// Package handler exposes the simulation harness over HTTP.
package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ZygmuntJakub/wizard/internal/engine"
	"github.com/ZygmuntJakub/wizard/internal/player"
	"github.com/ZygmuntJakub/wizard/internal/simulation"
)

type Handler struct {
	MaxGames        int
	Workers         int
	DecisionTimeout time.Duration
	Logger          *zerolog.Logger
}

// SimulationRequest is the body of POST /simulations.
type SimulationRequest struct {
	Strategies []string `json:"strategies"`
	Games      int      `json:"games"`
	Seed       uint64   `json:"seed"`
	Workers    int      `json:"workers"`
	// BidPolicy is "unbounded" (default) or "bounded".
	BidPolicy string `json:"bid_policy"`
	// WizardTrump lets the dealer declare trump under a flipped Wizard.
	WizardTrump bool `json:"wizard_trump"`
}

func (h Handler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.GET("/strategies", h.Strategies)
	e.POST("/simulations", h.Simulate)
}

func (h Handler) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

func (h Handler) Strategies(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"strategies": player.Names()})
}

func (h Handler) Simulate(c echo.Context) error {
	var req SimulationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	cfg, err := h.config(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := simulation.Run(c.Request().Context(), cfg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h Handler) config(req SimulationRequest) (simulation.Config, error) {
	if h.MaxGames > 0 && req.Games > h.MaxGames {
		return simulation.Config{}, fmt.Errorf("games must be at most %d", h.MaxGames)
	}
	if req.Workers < 0 {
		return simulation.Config{}, fmt.Errorf("workers must not be negative")
	}
	cfg := simulation.Config{
		Strategies:      req.Strategies,
		Games:           req.Games,
		Seed:            req.Seed,
		Workers:         req.Workers,
		DecisionTimeout: h.DecisionTimeout,
		Logger:          h.Logger,
	}
	if cfg.Workers == 0 {
		cfg.Workers = h.Workers
	}
	switch req.BidPolicy {
	case "", "unbounded":
		cfg.BidPolicy = engine.BidsUnbounded
	case "bounded":
		cfg.BidPolicy = engine.BidsBounded
	default:
		return simulation.Config{}, fmt.Errorf("unknown bid policy %q", req.BidPolicy)
	}
	if req.WizardTrump {
		cfg.WizardTrump = engine.DealerChooses
	}
	return cfg, cfg.Validate()
}
