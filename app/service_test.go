package app

import (
	"context"
	"testing"
	"time"

	"github.com/relaykit/relay/config"
	"github.com/relaykit/relay/core/factory"
	"github.com/relaykit/relay/core/metrics"
)

func demoConfig() *config.Config {
	cfg := &config.Config{
		Metrics: metrics.Config{
			Sinks: []factory.ModuleConfig{{Type: "summary"}},
		},
		Demo: config.DemoConfig{Publishers: 2, Events: 5, IntervalMS: 1},
	}
	cfg.Logging.SetDefaults()
	return cfg
}

func TestService_RunToCompletion(t *testing.T) {
	svc, err := New(demoConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	rep, ok := svc.sink.(metrics.SummaryReporter)
	if !ok {
		t.Fatalf("expected summary sink, got %T", svc.sink)
	}
	// 2 publishers x 5 alerts + 5 heartbeats each.
	if got := rep.Summary(); got == "" {
		t.Fatalf("empty summary")
	}
}

func TestService_RunCancelled(t *testing.T) {
	cfg := demoConfig()
	cfg.Demo.Events = 1000
	cfg.Demo.IntervalMS = 5
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer func() { _ = svc.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	if err := svc.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
}
