package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/tailored-agentic-units/reqstate/config"
	"github.com/tailored-agentic-units/reqstate/observability"
	"github.com/tailored-agentic-units/reqstate/store"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to JSON or YAML config file")
		actions    = flag.String("actions", "-", "Action log, one JSON action per line (- for stdin)")
		types      = flag.String("types", "", "Comma-separated base action types (overrides config)")
		observer   = flag.String("observer", "", "Observer name (overrides config)")
		persister  = flag.String("persister", "", "Snapshot persister: memory, json or yaml (overrides config)")
		snapDir    = flag.String("snapshot-dir", "", "Snapshot directory for json/yaml persisters (overrides config)")
		restore    = flag.String("restore", "", "Snapshot ID to load before replaying")
		save       = flag.Bool("save", false, "Save a snapshot after replaying")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *types != "" {
		cfg.Types = strings.Split(*types, ",")
	}
	if *observer != "" {
		cfg.Observer = *observer
	}
	if *persister != "" {
		cfg.Persister = *persister
	}
	if *snapDir != "" {
		cfg.SnapshotDir = *snapDir
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	s, err := store.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *restore != "" {
		if err := s.Load(ctx, *restore); err != nil {
			log.Fatalf("Failed to restore snapshot: %v", err)
		}
	}

	in, closeIn, err := openActions(*actions)
	if err != nil {
		log.Fatalf("Failed to open action log: %v", err)
	}
	defer closeIn()

	n, err := replay(ctx, s, in)
	if err != nil {
		log.Fatalf("Replay failed after %d actions: %v", n, err)
	}

	if *save {
		if err := s.Save(ctx); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
	}

	out, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode state: %v", err)
	}
	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "\nActions: %d\n", n)
}

func loadConfig(filename string) (*config.Config, error) {
	if filename != "" {
		return config.LoadConfig(filename)
	}
	cfg := config.DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func openActions(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
