package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/pegwatch/core"
	"github.com/jask/pegwatch/internal/config"
	"github.com/jask/pegwatch/internal/logger"
	"github.com/jask/pegwatch/internal/metrics"
	"github.com/jask/pegwatch/internal/quote"
	"github.com/jask/pegwatch/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// plain mode logs to stderr; the tui owns the terminal and logs to a file
	logPath := ""
	if cfg.UI.Mode == "tui" {
		logPath = cfg.Log.Path
		if logPath == "" {
			logPath = os.DevNull
		}
	}
	zl, err := logger.New(cfg.Log.Level, logPath)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var collector *metrics.Collector
	if cfg.Metrics.Addr != "" {
		collector = metrics.New()
		go func() {
			if err := collector.Serve(ctx, cfg.Metrics.Addr, zl); err != nil {
				zl.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	provider := quote.NewCoinGecko(cfg.Quote.BaseURL, cfg.Quote.APIKey, cfg.Quote.UserAgent, cfg.Quote.Timeout)
	poller := quote.NewPoller(provider, nil, cfg.Quote.PollInterval,
		quote.WithLogger(zl),
		quote.WithObserver(collector),
	)
	zl.Info("starting pegwatch",
		zap.String("mode", cfg.UI.Mode),
		zap.String("provider", provider.Name()),
		zap.Duration("interval", poller.Interval()))

	if cfg.UI.Mode == "plain" {
		runPlain(ctx, os.Stdout, poller)
		return
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	from, to := cfg.ConverterPair()
	prices := tui.NewPriceWidget(ctx, poller, keys, zl, from, to)
	p := tea.NewProgram(tui.New(prices, keys, cfg.UI.DarkMode), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Fatalf("run: %v", err)
	}
}
