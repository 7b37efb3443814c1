// Load generator for the wrapper packages: pushes N jobs through a
// rate-limited, retried fake upstream and exposes Prometheus metrics.
//
// Run with e.g.:
//
//	N=500 DELAY_MS=20 FAIL_PCT=30 go run ./cmd/loadtest
//
// Metrics are served on :2112/metrics while the run is in progress.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	promadapter "github.com/hacagahasanli/hh-toolkit-utils/adapters/prometheus"
	"github.com/hacagahasanli/hh-toolkit-utils/core/ratelimit"
	"github.com/hacagahasanli/hh-toolkit-utils/core/retry"
)

// === Config ===

var (
	logLevel   = slog.LevelInfo
	N          = getEnvInt("N", 200)
	delayMs    = getEnvInt("DELAY_MS", 10)
	retryCount = getEnvInt("RETRIES", 3)
	failPct    = getEnvInt("FAIL_PCT", 20)
	listenAddr = getEnv("LISTEN", ":2112")
	serveAfter = getEnvBool("KEEP_SERVING", false)
)

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "0")
	if v == "" {
		return fallback
	}
	if v == "1" || strings.ToLower(v) == "true" {
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, fmt.Sprintf("%d", fallback)))
	if err != nil {
		return fallback
	}
	return v
}

//

var errUpstream = errors.New("upstream unavailable")

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	fmt.Printf("Jobs:     %d\n", N)
	fmt.Printf("Cooldown: %dms\n", delayMs)
	fmt.Printf("Failure:  %d%%\n", failPct)

	reg := prometheus.NewRegistry()
	all := promadapter.NewAllMetrics(reg)

	go func() {
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(listenAddr, nil); err != nil {
			log.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Fake upstream: fails a configurable share of calls.
	upstream := func(_ context.Context, job string) (string, error) {
		if rand.Intn(100) < failPct {
			return "", errUpstream
		}
		return "done:" + job, nil
	}

	// Retry each job a few times before giving up.
	attempt := func(ctx context.Context, job string) (string, error) {
		return retry.DoValue(ctx, func(ctx context.Context) (string, error) {
			return upstream(ctx, job)
		},
			retry.WithRetries(retryCount),
			retry.WithDelay(time.Duration(delayMs)*time.Millisecond),
			retry.WithLogger(log),
			retry.WithMetrics(all.Retry),
		)
	}

	limiter, err := ratelimit.New(
		time.Duration(delayMs)*time.Millisecond,
		attempt,
		ratelimit.WithLogger(log),
		ratelimit.WithMetrics(all.RateLimit),
		ratelimit.WithQueueSize(N),
	)
	if err != nil {
		log.Error("failed to create limiter", slog.Any("error", err))
		os.Exit(1)
	}

	start := time.Now()

	results := make([]<-chan ratelimit.Result[string], 0, N)
	for i := 0; i < N; i++ {
		ch, err := limiter.Submit(ctx, gonanoid.Must(8))
		if err != nil {
			log.Error("submit failed", slog.Any("error", err))
			os.Exit(1)
		}
		results = append(results, ch)
	}

	var ok, failed int
	for _, ch := range results {
		r := <-ch
		if r.Err != nil {
			failed++
			continue
		}
		ok++
	}
	limiter.Close()

	elapsed := time.Since(start)
	log.Info("run complete",
		slog.Int("ok", ok),
		slog.Int("failed", failed),
		slog.Duration("elapsed", elapsed),
		slog.Float64("jobs_per_sec", float64(N)/elapsed.Seconds()),
	)

	if serveAfter {
		log.Info("serving metrics, ctrl-c to exit", slog.String("addr", listenAddr))
		select {}
	}
}
