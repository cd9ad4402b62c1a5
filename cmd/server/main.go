// Command server exposes the katsuyo conjugator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/conjugate?verb=<name|dictionary>&form=<form name>
//	GET  /api/conjugate?verb=...&tense=past&register=polite&polarity=negative&mode=potential
//	GET  /api/table?verb=<name|dictionary>
//	GET  /api/analyze?surface=<conjugated form>
//	GET  /api/forms
//	GET  /api/verbs[?dictionary=<dictionary form>]
//	POST /api/drill                 new challenge
//	POST /api/drill/{id}/answer     body: {"answer":"..."}
//	GET  /api/drill/stats
//	GET  /api/drill/recent?limit=<n>
//	GET  /metrics
//
// Configuration is read from the YAML file named by KATSUYO_CONFIG_FILE
// and KATSUYO_* environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/nihongo-drills/katsuyo"
	"github.com/nihongo-drills/katsuyo/internal/config"
	"github.com/nihongo-drills/katsuyo/internal/drill"
	"github.com/nihongo-drills/katsuyo/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.history.Close()

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.routes(cfg.Server.MetricsPath))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", map[string]interface{}{"addr": cfg.Server.Addr})
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServer loads the lexicon and opens the drill history.
func newServer(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*server, error) {
	logger.Info("loading lexicon", map[string]interface{}{"data_dir": cfg.Lexicon.DataDir})
	lex, err := katsuyo.New(cfg.Lexicon.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	logger.Info("lexicon loaded", map[string]interface{}{"verbs": lex.Len()})

	history, err := drill.OpenHistory(ctx, cfg.Drill.HistoryPath)
	if err != nil {
		return nil, err
	}
	return &server{
		lex:     lex,
		drills:  drill.NewRegistry(lex.Verbs(), cfg.Drill.MaxOpenChallenges, history),
		history: history,
		metrics: observability.NewMetrics(),
		logger:  logger,
	}, nil
}
