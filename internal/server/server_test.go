package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess2d-go/internal/config"
	chesserrors "github.com/lgbarn/chess2d-go/internal/errors"
	"github.com/lgbarn/chess2d-go/internal/game"
	"github.com/lgbarn/chess2d-go/internal/output"
	"github.com/lgbarn/chess2d-go/internal/testutil"
)

func testApp(t *testing.T, maxGames int) (*Application, *httptest.Server) {
	t.Helper()
	cfg := config.NewConfigBuilder().
		WithVerbosity(0).
		WithLog(io.Discard).
		WithMaxGames(maxGames).
		Build()
	app := NewApplication(cfg)
	srv := httptest.NewServer(app)
	t.Cleanup(srv.Close)
	return app, srv
}

func do(t *testing.T, method, url, body string, v interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, srv *httptest.Server, query string) output.JSONGame {
	t.Helper()
	var jg output.JSONGame
	if code := do(t, http.MethodPost, srv.URL+"/games"+query, "", &jg); code != http.StatusCreated {
		t.Fatalf("create game: status %d", code)
	}
	return jg
}

func TestCreateAndGet(t *testing.T) {
	_, srv := testApp(t, 4)

	jg := createGame(t, srv, "")
	testutil.AssertTrue(t, jg.ID != "", "game id assigned")
	testutil.AssertEqual(t, jg.ToMove, "white")
	testutil.AssertEqual(t, len(jg.Pieces), 32)

	var got output.JSONGame
	testutil.AssertEqual(t, do(t, http.MethodGet, srv.URL+"/games/"+jg.ID, "", &got), http.StatusOK)
	testutil.AssertEqual(t, got.FEN, jg.FEN)

	black := createGame(t, srv, "?first=black")
	testutil.AssertEqual(t, black.ToMove, "black")

	var list struct {
		Games []string `json:"games"`
	}
	testutil.AssertEqual(t, do(t, http.MethodGet, srv.URL+"/games", "", &list), http.StatusOK)
	testutil.AssertEqual(t, len(list.Games), 2)

	testutil.AssertEqual(t, do(t, http.MethodPost, srv.URL+"/games?first=green", "", nil), http.StatusBadRequest)
	testutil.AssertEqual(t, do(t, http.MethodGet, srv.URL+"/games/no-such-game", "", nil), http.StatusNotFound)
}

func TestGameLimit(t *testing.T) {
	app, srv := testApp(t, 1)
	createGame(t, srv, "")

	var resp errorResponse
	testutil.AssertEqual(t, do(t, http.MethodPost, srv.URL+"/games", "", &resp), http.StatusServiceUnavailable)
	testutil.AssertContains(t, resp.Error, "too many games")

	_, err := app.Registry().Create(app.cfg.Game.InitialSide)
	testutil.AssertErrorIs(t, err, chesserrors.ErrTooManyGames)
}

func TestRegistryIDs(t *testing.T) {
	app, _ := testApp(t, 8)
	reg := app.Registry()
	for i := 0; i < 5; i++ {
		_, err := reg.Create(app.cfg.Game.InitialSide)
		testutil.AssertNoError(t, err)
	}

	ids := reg.IDs()
	testutil.AssertEqual(t, len(ids), 5)
	testutil.AssertEqual(t, reg.Len(), 5)
	testutil.AssertTrue(t, slices.IsSorted(ids), "ids sorted: %v", ids)

	testutil.AssertNoError(t, reg.Delete(ids[0]))
	testutil.AssertEqual(t, reg.IDs(), ids[1:])
}

func TestDestinationsAndMove(t *testing.T) {
	_, srv := testApp(t, 4)
	id := createGame(t, srv, "").ID
	base := srv.URL + "/games/" + id

	var dests struct {
		Piece        string   `json:"piece"`
		Side         string   `json:"side"`
		Destinations []string `json:"destinations"`
	}
	testutil.AssertEqual(t, do(t, http.MethodGet, base+"/moves/e2", "", &dests), http.StatusOK)
	testutil.AssertEqual(t, dests.Piece, "Pawn")
	testutil.AssertEqual(t, dests.Side, "White")
	testutil.AssertEqual(t, dests.Destinations, []string{"e3", "e4"})

	testutil.AssertEqual(t, do(t, http.MethodGet, base+"/moves/e4", "", nil), http.StatusNotFound)
	testutil.AssertEqual(t, do(t, http.MethodGet, base+"/moves/z9", "", nil), http.StatusBadRequest)

	var res output.JSONResult
	testutil.AssertEqual(t, do(t, http.MethodPost, base+"/move", `{"from":"e2","to":"e4"}`, &res), http.StatusOK)
	testutil.AssertEqual(t, res.Outcome, "Moved")
	testutil.AssertEqual(t, res.Path, []string{"e2", "e3", "e4"})
	testutil.AssertEqual(t, res.Game.ToMove, "black")
	testutil.AssertEqual(t, res.Game.ID, id)

	res = output.JSONResult{}
	testutil.AssertEqual(t, do(t, http.MethodPost, base+"/move", `{"from":"e4","to":"e5"}`, &res), http.StatusOK)
	testutil.AssertEqual(t, res.Outcome, "Rejected")
	testutil.AssertTrue(t, res.Reason != "", "rejection carries a reason")

	testutil.AssertEqual(t, do(t, http.MethodPost, base+"/move", `{"from":"e3","to":"e5"}`, nil), http.StatusNotFound)
	testutil.AssertEqual(t, do(t, http.MethodPost, base+"/move", `not json`, nil), http.StatusBadRequest)

	var snap output.JSONGame
	testutil.AssertEqual(t, do(t, http.MethodPost, base+"/reset", "", &snap), http.StatusOK)
	testutil.AssertEqual(t, snap.PlyCount, 0)
	testutil.AssertEqual(t, snap.ToMove, "white")
}

func TestPath(t *testing.T) {
	_, srv := testApp(t, 4)
	base := srv.URL + "/games/" + createGame(t, srv, "").ID

	var resp struct {
		Path []string `json:"path"`
	}
	testutil.AssertEqual(t, do(t, http.MethodGet, base+"/path/a1/h8", "", &resp), http.StatusOK)
	testutil.AssertEqual(t, strings.Join(resp.Path, " "), "a1 b2 c3 d4 e5 f6 g7 h8")

	testutil.AssertEqual(t, do(t, http.MethodGet, base+"/path/b1/c3", "", &resp), http.StatusOK)
	testutil.AssertEqual(t, resp.Path, []string{"b1", "c3"})

	testutil.AssertEqual(t, do(t, http.MethodGet, base+"/path/a1/a9", "", nil), http.StatusBadRequest)
}

func TestBoardSVG(t *testing.T) {
	_, srv := testApp(t, 4)
	base := srv.URL + "/games/" + createGame(t, srv, "").ID

	resp, err := http.Get(base + "/board.svg?piece=g1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	testutil.AssertEqual(t, resp.StatusCode, http.StatusOK)
	testutil.AssertEqual(t, resp.Header.Get("Content-Type"), "image/svg+xml")
	testutil.AssertTrue(t, bytes.Contains(body, []byte("<svg")), "svg document")
	testutil.AssertEqual(t, bytes.Count(body, []byte("<text")), 32)
}

func TestDelete(t *testing.T) {
	app, srv := testApp(t, 4)
	id := createGame(t, srv, "").ID

	testutil.AssertEqual(t, do(t, http.MethodDelete, srv.URL+"/games/"+id, "", nil), http.StatusNoContent)
	testutil.AssertEqual(t, app.Registry().Len(), 0)
	testutil.AssertEqual(t, do(t, http.MethodDelete, srv.URL+"/games/"+id, "", nil), http.StatusNotFound)
}

func TestWebsocketBroadcast(t *testing.T) {
	_, srv := testApp(t, 4)
	id := createGame(t, srv, "").ID
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/games/" + id + "/ws"

	watcher, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer watcher.Close()
	player, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer player.Close()

	read := func(conn *websocket.Conn, v interface{}) {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(v); err != nil {
			t.Fatalf("read: %v", err)
		}
	}

	var initial output.JSONGame
	read(watcher, &initial)
	testutil.AssertEqual(t, initial.ID, id)
	testutil.AssertEqual(t, initial.PlyCount, 0)
	read(player, &initial)

	// A rejected move goes back to the sender only.
	if err := player.WriteJSON(moveRequest{From: "e7", To: "e5"}); err != nil {
		t.Fatal(err)
	}
	var rejected output.JSONResult
	read(player, &rejected)
	testutil.AssertEqual(t, rejected.Outcome, "Rejected")

	if err := player.WriteJSON(moveRequest{From: "g1", To: "f3"}); err != nil {
		t.Fatal(err)
	}
	var update output.JSONGame
	read(watcher, &update)
	testutil.AssertEqual(t, update.PlyCount, 1)
	testutil.AssertEqual(t, update.ToMove, "black")
	read(player, &update)
	testutil.AssertEqual(t, update.PlyCount, 1)

	// HTTP moves reach websocket subscribers too.
	testutil.AssertEqual(t, do(t, http.MethodPost, srv.URL+"/games/"+id+"/move", `{"from":"g8","to":"f6"}`, nil), http.StatusOK)
	read(watcher, &update)
	testutil.AssertEqual(t, update.PlyCount, 2)
}

func TestBroadcastDropsStalledClient(t *testing.T) {
	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()
	conn := <-conns

	cfg := config.NewConfigBuilder().WithVerbosity(0).WithLog(io.Discard).Build()
	// A deadline already in the past stands in for a client that never reads.
	s := &Session{
		ID:        "stalled",
		game:      game.New(cfg),
		clients:   map[*websocket.Conn]struct{}{conn: {}},
		writeWait: -time.Second,
	}

	s.mu.Lock()
	err = s.send(conn, s.snapshot())
	s.broadcast(s.snapshot())
	remaining := len(s.clients)
	s.mu.Unlock()

	testutil.AssertTrue(t, err != nil, "write past the deadline fails")
	testutil.AssertEqual(t, remaining, 0)
}
