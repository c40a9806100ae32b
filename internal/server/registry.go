package server

import (
	"fmt"
	"slices"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/errors"
	"github.com/lgbarn/chess2d-go/internal/game"
	"github.com/lgbarn/chess2d-go/internal/output"
)

// Session is one hosted game and its websocket subscribers. All access to
// the game and to client connections goes through mu.
type Session struct {
	ID string

	mu        sync.Mutex
	game      *game.Controller
	clients   map[*websocket.Conn]struct{}
	writeWait time.Duration
}

// Do runs fn with exclusive access to the game.
func (s *Session) Do(fn func(c *game.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// snapshot must be called with mu held.
func (s *Session) snapshot() *output.JSONGame {
	jg := output.GameToJSON(s.game)
	jg.ID = s.ID
	return jg
}

// send writes v to one subscriber, giving up after writeWait so a stalled
// client cannot hold mu. It must be called with mu held.
func (s *Session) send(conn *websocket.Conn, v interface{}) error {
	if err := conn.SetWriteDeadline(time.Now().Add(s.writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

// broadcast sends v to every subscriber, dropping those that fail. It must
// be called with mu held.
func (s *Session) broadcast(v interface{}) {
	for conn := range s.clients {
		if err := s.send(conn, v); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

// Registry holds the hosted games keyed by a generated name.
type Registry struct {
	cfg *config.Config

	mu    sync.RWMutex
	games map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		cfg:   cfg,
		games: make(map[string]*Session),
	}
}

// Create starts a new game with initial moving first.
func (r *Registry) Create(initial chess.Side) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.games) >= r.cfg.Server.MaxGames {
		return nil, errors.Wrapf(errors.ErrTooManyGames, "limit %d", r.cfg.Server.MaxGames)
	}

	id := petname.Generate(2, "-")
	for n := 2; r.games[id] != nil; n++ {
		id = fmt.Sprintf("%s-%d", petname.Generate(2, "-"), n)
	}

	c := game.New(r.cfg)
	if initial != c.InitialSide() {
		c.Setup(initial)
	}
	s := &Session{
		ID:        id,
		game:      c,
		clients:   make(map[*websocket.Conn]struct{}),
		writeWait: r.cfg.Server.WriteTimeout,
	}
	r.games[id] = s
	r.cfg.Logf(1, "game %s created, %s to move", id, initial)
	return s, nil
}

// Get returns the session for id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownGame, "%q", id)
	}
	return s, nil
}

// Delete removes a game and disconnects its subscribers.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.games[id]
	delete(r.games, id)
	r.mu.Unlock()
	if !ok {
		return errors.Wrapf(errors.ErrUnknownGame, "%q", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = map[*websocket.Conn]struct{}{}
	r.cfg.Logf(1, "game %s deleted", id)
	return nil
}

// IDs returns the registered game names in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.games))
}

// Len returns the number of hosted games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
