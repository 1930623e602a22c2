// Command cadence is the main entry point for the Cadence speech performance
// analysis server. It can also analyze a single recording from a JSON file
// and print the report, via the -input flag.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/podiumlabs/cadence/internal/api"
	"github.com/podiumlabs/cadence/internal/config"
	"github.com/podiumlabs/cadence/internal/health"
	"github.com/podiumlabs/cadence/internal/lexicon"
	"github.com/podiumlabs/cadence/internal/observe"
	"github.com/podiumlabs/cadence/internal/report"
	"github.com/podiumlabs/cadence/pkg/speech"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	inputPath := flag.String("input", "", "analyze one recording from a JSON file (\"-\" for stdin) and print the report instead of serving")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "cadence: config file %q not found — copy configs/example.yaml to get started\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "cadence: %v\n", err)
		}
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	// The level lives in a LevelVar so config reloads can adjust verbosity
	// without replacing the logger.
	level := new(slog.LevelVar)
	level.Set(slogLevel(cfg.Server.LogLevel))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── One-shot mode ─────────────────────────────────────────────────────────
	if *inputPath != "" {
		return analyzeOnce(buildGenerator(cfg, nil), *inputPath)
	}

	slog.Info("cadence starting",
		"version", version,
		"config", *configPath,
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	metrics := observe.DefaultMetrics()

	// ── HTTP server ───────────────────────────────────────────────────────────
	apiServer := api.NewServer(buildGenerator(cfg, metrics), metrics, api.WithHealth(health.New()))

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ── Config watcher ────────────────────────────────────────────────────────
	watcher, err := config.NewWatcher(*configPath, func(old, new *config.Config) {
		d := config.Diff(old, new)
		if !d.Any() {
			return
		}
		if d.LogLevelChanged {
			level.Set(slogLevel(d.NewLogLevel))
			slog.Info("log level changed", "level", d.NewLogLevel)
		}
		if d.LexiconChanged || d.SequentialChanged {
			apiServer.SetGenerator(buildGenerator(new, metrics))
			slog.Info("generator rebuilt",
				"lexicon_changed", d.LexiconChanged,
				"sequential", new.Analysis.Sequential,
			)
		}
	})
	if err != nil {
		slog.Error("failed to start config watcher", "err", err)
		return 1
	}
	defer watcher.Stop()

	// ── Serve ─────────────────────────────────────────────────────────────────
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server ready — press Ctrl+C to shut down", "addr", cfg.Server.ListenAddr)
		if cfg.Server.TLS != nil {
			serveErr <- httpServer.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			serveErr <- httpServer.ListenAndServe()
		}
	}()

	select {
	case err := <-serveErr:
		slog.Error("server error", "err", err)
		return 1
	case <-ctx.Done():
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	slog.Info("shutdown signal received, stopping…")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// buildGenerator assembles the analyzer vocabularies from cfg and returns a
// report generator. Lexicon warnings are logged, never fatal — building a
// generator cannot fail.
func buildGenerator(cfg *config.Config, metrics *observe.Metrics) *report.Generator {
	vocab, warnings := lexicon.Build(lexicon.Extensions{
		Fillers:        cfg.Lexicon.ExtraFillers,
		Hedges:         cfg.Lexicon.ExtraHedges,
		AnalogyMarkers: cfg.Lexicon.ExtraAnalogyMarkers,
	})
	for _, w := range warnings {
		slog.Warn(w)
	}

	opts := []report.Option{report.WithVocabularies(vocab)}
	if metrics != nil {
		opts = append(opts, report.WithMetrics(metrics))
	}
	if cfg.Analysis.Sequential {
		opts = append(opts, report.WithSequential())
	}
	return report.NewGenerator(opts...)
}

// analyzeOnce reads one AnalysisInput from path (or stdin when path is "-"),
// generates the report, and prints it as indented JSON on stdout.
func analyzeOnce(gen *report.Generator, path string) int {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadence: read input: %v\n", err)
		return 1
	}

	var in speech.AnalysisInput
	if err := json.Unmarshal(data, &in); err != nil {
		fmt.Fprintf(os.Stderr, "cadence: parse input: %v\n", err)
		return 1
	}

	rep, err := gen.Generate(context.Background(), in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadence: analyze: %v\n", err)
		return 1
	}
	rep.ReportID = uuid.NewString()

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadence: encode report: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// slogLevel maps a config log level to its slog equivalent.
func slogLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogDebug:
		return slog.LevelDebug
	case config.LogWarn:
		return slog.LevelWarn
	case config.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
