package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Collector records fetch cycle outcomes and the latest quotes. A nil
// *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	cycles   *prometheus.CounterVec
	duration prometheus.Histogram
	price    *prometheus.GaugeVec
	change   *prometheus.GaugeVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pegwatch_fetch_cycles_total",
				Help: "Completed fetch cycles by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pegwatch_fetch_duration_seconds",
				Help:    "Time spent waiting on the quote endpoint",
				Buckets: prometheus.DefBuckets,
			}),
		price: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pegwatch_quote_price",
				Help: "Last published USD price",
			},
			[]string{"symbol"},
		),
		change: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pegwatch_quote_change_24h",
				Help: "Last published 24h percentage change",
			},
			[]string{"symbol"},
		),
	}
	c.registry.MustRegister(c.cycles, c.duration, c.price, c.change)
	return c
}

func (c *Collector) ObserveCycle(result string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.cycles.WithLabelValues(result).Inc()
	c.duration.Observe(elapsed.Seconds())
}

func (c *Collector) ObserveQuote(symbol string, price, change24h float64) {
	if c == nil {
		return
	}
	c.price.WithLabelValues(symbol).Set(price)
	c.change.WithLabelValues(symbol).Set(change24h)
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
