package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess2d-go/internal/game"
)

// wsHandler subscribes a client to a game. The client receives the current
// snapshot on connect and every later position; it may send moves as
// {"from":"e2","to":"e4"} and receives an error object when one fails.
func (app *Application) wsHandler(w http.ResponseWriter, r *http.Request) {
	s, err := app.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		app.cfg.Logf(1, "websocket upgrade for %s: %v", s.ID, err)
		return
	}
	app.cfg.Logf(1, "websocket client %s joined %s", conn.RemoteAddr(), s.ID)

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	err = s.send(conn, s.snapshot())
	s.mu.Unlock()
	if err != nil {
		app.drop(s, conn)
		return
	}

	go app.readLoop(s, conn)
}

func (app *Application) readLoop(s *Session, conn *websocket.Conn) {
	defer app.drop(s, conn)
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			app.cfg.Logf(2, "websocket client %s left %s: %v", conn.RemoteAddr(), s.ID, err)
			return
		}

		var req moveRequest
		if err := json.Unmarshal(message, &req); err != nil {
			s.mu.Lock()
			s.send(conn, errorResponse{Error: "malformed move: " + err.Error()}) //nolint:errcheck // next read fails
			s.mu.Unlock()
			continue
		}

		s.mu.Lock()
		jr, err := s.move(req)
		switch {
		case err != nil:
			s.send(conn, errorResponse{Error: err.Error()}) //nolint:errcheck // next read fails
		case jr.Outcome == game.Rejected.String():
			s.send(conn, jr) //nolint:errcheck // next read fails
		}
		s.mu.Unlock()
	}
}

func (app *Application) drop(s *Session, conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}
