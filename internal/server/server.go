// Package server hosts chess2d games over HTTP and websockets.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/engine"
	"github.com/lgbarn/chess2d-go/internal/errors"
	"github.com/lgbarn/chess2d-go/internal/game"
	"github.com/lgbarn/chess2d-go/internal/output"
	"github.com/lgbarn/chess2d-go/internal/script"
)

// Application routes requests to hosted games.
type Application struct {
	cfg      *config.Config
	router   *mux.Router
	games    *Registry
	upgrader websocket.Upgrader
}

// moveRequest is the body of a move, over HTTP or websocket.
type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewApplication creates the router with every game route registered.
func NewApplication(cfg *config.Config) *Application {
	app := &Application{
		cfg:    cfg,
		router: mux.NewRouter(),
		games:  NewRegistry(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if cfg.Verbosity > 0 {
		app.router.Use(app.logger)
	}
	app.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	app.router.HandleFunc("/games", app.createHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/games", app.listHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/games/{id}", app.getHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/games/{id}", app.deleteHandler).Methods(http.MethodDelete)
	app.router.HandleFunc("/games/{id}/board.svg", app.svgHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/games/{id}/moves/{square}", app.destinationsHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/games/{id}/move", app.moveHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/games/{id}/reset", app.resetHandler).Methods(http.MethodPost)
	app.router.HandleFunc("/games/{id}/path/{from}/{to}", app.pathHandler).Methods(http.MethodGet)
	app.router.HandleFunc("/games/{id}/ws", app.wsHandler)
	return app
}

// Registry exposes the hosted games.
func (app *Application) Registry() *Registry {
	return app.games
}

func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

func (app *Application) logger(next http.Handler) http.Handler {
	return handlers.LoggingHandler(app.cfg.LogFile, next)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func (app *Application) createHandler(w http.ResponseWriter, r *http.Request) {
	initial := app.cfg.Game.InitialSide
	if name := r.URL.Query().Get("first"); name != "" {
		side, ok := chess.ParseSide(name)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown side " + name})
			return
		}
		initial = side
	}

	s, err := app.games.Create(initial)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusCreated, s.snapshot())
}

func (app *Application) listHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Games []string `json:"games"`
	}{Games: app.games.IDs()})
}

func (app *Application) getHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (app *Application) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.games.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) svgHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var highlight []chess.Square
	if name := r.URL.Query().Get("piece"); name != "" {
		highlight, err = destinationsFrom(s.game, name)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	output.NewSVGWriter(w, app.cfg).WriteGame(s.game, highlight) //nolint:errcheck // headers already sent
}

func (app *Application) destinationsHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	name := mux.Vars(r)["square"]

	s.mu.Lock()
	defer s.mu.Unlock()
	dests, err := destinationsFrom(s.game, name)
	if err != nil {
		writeError(w, err)
		return
	}
	p := s.game.Board().Get(chess.MustParseSquare(name))
	writeJSON(w, http.StatusOK, struct {
		Square       string   `json:"square"`
		Piece        string   `json:"piece"`
		Side         string   `json:"side"`
		Destinations []string `json:"destinations"`
	}{
		Square:       name,
		Piece:        p.Kind.String(),
		Side:         p.Side.String(),
		Destinations: output.SquareNames(dests),
	})
}

// destinationsFrom returns the deduplicated destinations of the piece on name.
func destinationsFrom(c *game.Controller, name string) ([]chess.Square, error) {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return nil, err
	}
	p, err := c.PieceAt(sq)
	if err != nil {
		return nil, err
	}
	dests, err := c.LegalDestinations(p)
	if err != nil {
		return nil, err
	}
	return engine.Unique(dests), nil
}

func (app *Application) moveHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed move: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	jr, err := s.move(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jr)
}

// move applies req and notifies subscribers. It must be called with mu held.
func (s *Session) move(req moveRequest) (*output.JSONResult, error) {
	from, err := chess.ParseSquare(req.From)
	if err != nil {
		return nil, err
	}
	to, err := chess.ParseSquare(req.To)
	if err != nil {
		return nil, err
	}
	res, err := script.Apply(s.game, script.Step{From: from, To: to})
	if err != nil {
		return nil, err
	}
	jr := output.ResultToJSON(res, s.game)
	jr.Game.ID = s.ID
	if res.Outcome != game.Rejected {
		s.broadcast(jr.Game)
	}
	return jr, nil
}

func (app *Application) resetHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	snap := s.snapshot()
	s.broadcast(snap)
	writeJSON(w, http.StatusOK, snap)
}

func (app *Application) pathHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vars := mux.Vars(r)
	from, err := chess.ParseSquare(vars["from"])
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := chess.ParseSquare(vars["to"])
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	path, err := s.game.Path(from, to)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Path []string `json:"path"`
	}{Path: output.SquareNames(path)})
}

func (app *Application) session(r *http.Request) (*Session, error) {
	return app.games.Get(mux.Vars(r)["id"])
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrUnknownGame), errors.Is(err, errors.ErrNoPiece):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrInvalidSquare), errors.Is(err, errors.ErrOutOfBounds),
		errors.Is(err, errors.ErrInvalidScript):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrTooManyGames):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck,gosec // client went away
}
