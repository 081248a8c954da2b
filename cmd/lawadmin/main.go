// Command lawadmin is the operations console for the LawAfrica digital
// hub. All dependency wiring happens here; the cli package only parses
// commands and formats output.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/api"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/auth"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/config/file"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/gateway"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/storage/memory"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driven/storage/sqlite"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/cli"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/services"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/logger"
)

// defaultOrigin is used until api.origin is configured.
const defaultOrigin = "https://api.lawafrica.digital"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if stop, werr := cfg.Watch(nil); werr != nil {
		logger.Debug("config: live reload unavailable: %v", werr)
	} else {
		defer stop()
	}

	session, err := auth.NewSession("")
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	origin := cfg.GetString(file.KeyAPIOrigin)
	if origin == "" {
		origin = defaultOrigin
	}

	var opts []gateway.Option
	if ms := cfg.GetInt(file.KeyThrottleWindow); ms > 0 {
		opts = append(opts, gateway.WithThrottleWindow(time.Duration(ms)*time.Millisecond))
	}
	if rps := cfg.GetInt(file.KeyRateLimitRPS); rps > 0 {
		opts = append(opts, gateway.WithRateLimit(gateway.RateLimitConfig{
			RequestsPerSecond: float64(rps),
			BurstSize:         rps * 2,
		}))
	}
	gw := gateway.New(origin, session, opts...)
	client := api.NewClient(gw)

	// Fall back to a process-local cache when the on-disk one cannot open.
	var threads driven.ThreadStore
	if store, err := sqlite.NewStore(""); err != nil {
		logger.Warn("Thread cache unavailable, falling back to memory: %v", err)
		threads = memory.NewThreadStore()
	} else {
		defer store.Close()
		threads = store.ThreadStore()
	}

	assistantSvc := services.NewAssistantService(client, threads)

	cli.SetConfigStore(cfg)
	cli.SetServices(cli.Services{
		Session:   services.NewSessionService(client, session),
		Assistant: assistantSvc,
		Admin:     services.NewAdminService(client),
	})

	return cli.Execute()
}
