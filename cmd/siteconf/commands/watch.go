package commands

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/hugo"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output      string        `short:"o" help:"Directory to write the engine config into" default:"."`
	Format      string        `short:"f" help:"Engine config format (yaml, toml)" enum:"yaml,toml" default:"yaml"`
	Debounce    time.Duration `help:"Quiet period before reloading after a change" default:"500ms"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	format, err := hugo.ParseFormat(w.Format)
	if err != nil {
		return errors.ValidationError("invalid format").WithCause(err).Build()
	}

	rec := g.recorder()
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
		srv := startMetricsServer(w.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Metrics server shutdown failed", logfields.Error(err))
			}
		}()
	}

	opts := watch.Options{
		Load:      root.LoadOptions(g),
		OutputDir: w.Output,
		Format:    format,
		Debounce:  w.Debounce,
		Recorder:  rec,
	}
	watcher, err := watch.New(opts)
	if err != nil {
		return errors.RuntimeError("failed to start watcher").WithCause(err).Build()
	}
	return watcher.Run(ctx)
}

func startMetricsServer(addr string, reg *prom.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("Serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()
	return srv
}
