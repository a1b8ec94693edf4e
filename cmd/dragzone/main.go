package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	zone "github.com/lrstanley/bubblezone"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/internal/config"
	"github.com/rileylov/dragzone/metrics"
	"github.com/rileylov/dragzone/tui"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

type flags struct {
	config      string
	logFile     string
	logLevel    string
	metricsAddr string
}

func main() {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "dragzone",
		Short: "Drag items into bins with the mouse",
		Long: `dragzone is a terminal drag-and-drop board.

Items on the left can be dragged onto bins on the right that share one of
their keys. Dropping onto a clipboard bin copies the item's data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}
	rootCmd.Flags().StringVarP(&f.config, "config", "c", "", "config file (default ~/.config/dragzone/config.toml)")
	rootCmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dragzone %s (%s)\n", version, commit)
		},
	}
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec := metrics.New(reg)

	if cfg.Metrics.Addr != "" {
		stop, err := serveMetrics(cfg.Metrics.Addr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	zone.NewGlobal()
	board := tui.NewBoard(options(cfg, logger, rec))

	p := tea.NewProgram(board, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// newLogger returns a logger writing to the configured file. bubbletea owns
// the terminal, so without a file logs are discarded.
func newLogger(c config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	if c.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	file, err := tea.LogToFile(c.File, "dragzone")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }, nil
}

// serveMetrics exposes reg on addr until stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (stop func(), err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

// options maps configuration onto the board.
func options(cfg config.Config, logger *slog.Logger, rec dnd.Recorder) tui.Options {
	src := dnd.DefaultSourceConfig()
	src.DragClone = cfg.Drag.Clone
	src.DisappearDraggedElement = cfg.Drag.Disappear
	src.Opacity = cfg.Drag.Opacity
	src.ZIndex = cfg.Drag.ZIndex
	src.XOnly = cfg.Drag.XOnly
	src.YOnly = cfg.Drag.YOnly
	src.OffsetX = cfg.Drag.OffsetX
	src.OffsetY = cfg.Drag.OffsetY
	src.EdgeMargin = cfg.Drag.EdgeMargin

	tgt := dnd.DefaultTargetConfig()
	tgt.HighlightClass = cfg.Target.HighlightClass

	opts := tui.Options{
		Title:     "dragzone",
		Source:    src,
		Target:    tgt,
		Clipboard: clipboard.WriteAll,
		Logger:    logger,
		Recorder:  rec,
	}
	for _, it := range cfg.Items {
		item := tui.Item{Label: it.Label, Keys: it.Keys}
		if it.Data != "" {
			item.Data = it.Data
		}
		opts.Items = append(opts.Items, item)
	}
	for _, b := range cfg.Bins {
		opts.Bins = append(opts.Bins, tui.Bin{Name: b.Name, Keys: b.Keys, Clipboard: b.Clipboard})
	}
	return opts
}
