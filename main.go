package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"govfaqscraper/api"
	"govfaqscraper/browser"
	"govfaqscraper/cache"
	"govfaqscraper/config"
	"govfaqscraper/ecitizen"
	"govfaqscraper/faq"
	"govfaqscraper/fetch"
	"govfaqscraper/kra"
	"govfaqscraper/scraper"
	"govfaqscraper/sha"
	"govfaqscraper/slides"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	configPath := flag.String("config", "", "path to yaml config file overlaying the defaults")
	runSource := flag.String("run", "", "scrape a single source to stdout as NDJSON and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	pool := browser.New(cfg.Browser.PoolSize, cfg.Browser.Timeout, log.With().Str("component", "browser").Logger())
	defer pool.Shutdown()

	registry := buildRegistry(cfg, pool)

	if *runSource != "" {
		runOnce(registry, *runSource)
		return
	}

	resultCache := cache.New(cfg.RedisAddr, log.With().Str("component", "cache").Logger())
	server := api.NewServer(registry, resultCache, cfg.CacheTTL, log.With().Str("component", "api").Logger())

	port := cfg.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	handler := handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stdout, server.Router()))
	log.Info().Str("port", port).Strs("sources", registry.Names()).Msg("server is running")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func buildRegistry(cfg config.Config, pool *browser.Pool) *scraper.Registry {
	registry := scraper.NewRegistry()

	registry.Register(ecitizen.NewSource(
		cfg.ECitizen,
		fetch.NewClient(cfg.ECitizen.AllowedDomains, log.With().Str("source", "ecitizen").Logger()),
		log.With().Str("source", "ecitizen").Logger(),
	))
	registry.Register(sha.NewSource(
		cfg.SHA,
		pool,
		log.With().Str("source", "sha").Logger(),
	))
	registry.Register(kra.NewSource(
		cfg.KRA,
		fetch.NewClient(cfg.KRA.AllowedDomains, log.With().Str("source", "kra").Logger()),
		cfg.Traversal.MaxPages,
		log.With().Str("source", "kra").Logger(),
	))
	registry.Register(slides.NewSource(
		cfg.Slides,
		log.With().Str("source", "slides").Logger(),
	))

	return registry
}

// runOnce streams one source's records to stdout as NDJSON, the
// simplest sink for piping into a storage pipeline.
func runOnce(registry *scraper.Registry, name string) {
	encoder := json.NewEncoder(os.Stdout)
	err := registry.Run(context.Background(), name, func(rec faq.Record) {
		if err := encoder.Encode(rec); err != nil {
			log.Error().Err(err).Msg("failed to write record")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Str("source", name).Msg("scrape failed")
	}
}
