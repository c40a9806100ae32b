// chess2d-server hosts chess2d games over HTTP with websocket updates.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/server"
)

var (
	addr       = flag.String("addr", ":8080", "Listen address")
	maxGames   = flag.Int("max-games", 64, "Maximum number of hosted games")
	blackFirst = flag.Bool("black-first", false, "Black moves first in new games")
	rawKnight  = flag.Bool("raw-knight", false, "Keep friend-occupied knight squares in destination lists")
	squareSize = flag.Int("square", 60, "SVG square size in pixels")
	writeWait  = flag.Duration("write-timeout", 10*time.Second, "Websocket write deadline per subscriber")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 quiet, 1 requests and game events, 2 every move")
)

func main() {
	flag.Parse()

	builder := config.NewConfigBuilder().
		WithServerAddr(*addr).
		WithMaxGames(*maxGames).
		WithWriteTimeout(*writeWait).
		WithRawKnightSquares(*rawKnight).
		WithVerbosity(*verbosity)
	if *blackFirst {
		builder.WithInitialSide(chess.Black)
	}
	cfg := builder.Build()
	cfg.Output.SquareSize = *squareSize
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewApplication(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Logf(1, "listening on %s", ln.Addr())
	if err := serve(ctx, srv, ln, 5*time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Logf(1, "server stopped")
}

// serve runs srv on ln until ctx is done, then shuts it down and returns once
// in-flight requests have drained or grace has passed.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		srv.Shutdown(shutdown) //nolint:errcheck,gosec // grace expired, exiting anyway
	}()

	if err := srv.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	<-drained
	return nil
}
