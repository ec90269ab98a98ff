package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"wizard-server/internal/config"
	"wizard-server/pkg/room"
	"wizard-server/pkg/wizard"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	registry := room.NewRegistry(gameOptions())
	registry.StartShift()

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/game/{id}/ws").Handler(this.getGameIDWS())

	return this
}

// gameOptions builds the game options from the configuration
func gameOptions() wizard.Options {
	cfg := config.Instance()

	return wizard.Options{
		MaxRounds:           cfg.Game.MaxRounds,
		CardsPerRoundOffset: cfg.Game.CardsPerRoundOffset,
		StrictPlay:          cfg.Game.StrictPlay,
	}
}
