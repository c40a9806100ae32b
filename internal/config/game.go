package config

import "github.com/lgbarn/chess2d-go/internal/chess"

// GameConfig holds settings for the rules engine and turn order.
type GameConfig struct {
	// InitialSide is the side that moves first after setup and reset.
	InitialSide chess.Side

	// RawKnightSquares lists friend-occupied knight squares as destinations.
	// Such moves are still rejected when attempted.
	RawKnightSquares bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		InitialSide: chess.White,
	}
}
