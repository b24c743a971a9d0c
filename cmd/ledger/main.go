package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/murkotick/inventory-ledger/internal/app/product/draft"
	"github.com/murkotick/inventory-ledger/internal/app/product/ledger"
	"github.com/murkotick/inventory-ledger/internal/app/product/store"
	"github.com/murkotick/inventory-ledger/internal/config"
	"github.com/murkotick/inventory-ledger/internal/pkg/clock"
	logx "github.com/murkotick/inventory-ledger/internal/pkg/logger"
	restproduct "github.com/murkotick/inventory-ledger/internal/transport/rest/product"
)

func main() {
	envFile := flag.String("env-file", ".env", "optional dotenv file with LEDGER_* settings")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger := logx.Init(logx.Options{Environment: cfg.Env()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info().Msg("shutdown signal received")
		cancel()
	}()

	client, err := restproduct.NewClient(cfg.API.BaseURL,
		restproduct.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		restproduct.WithLogger(logger),
		restproduct.WithUnitPriceKey(cfg.API.UnitPriceKey),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("build remote client")
	}
	logger.Info().Str("resource", client.ResourceURL()).Str("env", cfg.Env().String()).Msg("starting ledger")

	term := newTerminal(os.Stdin, os.Stdout, cfg.Currency)
	st := store.New(client, term, term, clock.RealClock{}, logger)
	sess := ledger.NewSession(st, draft.NewController(), logger)

	// Load failures are already shown to the user by the store.
	_ = sess.Load(ctx)

	term.run(ctx, sess)
	logger.Info().Msg("ledger stopped")
}
