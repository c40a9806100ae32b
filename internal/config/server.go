package config

import "time"

// ServerConfig holds settings for the HTTP game server.
type ServerConfig struct {
	// Addr is the listen address
	Addr string

	// MaxGames limits concurrently registered games
	MaxGames int

	// WriteTimeout bounds each websocket write to a subscriber
	WriteTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		MaxGames:     64,
		WriteTimeout: 10 * time.Second,
	}
}
