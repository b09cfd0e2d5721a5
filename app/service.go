package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/relaykit/relay/config"
	"github.com/relaykit/relay/core/hub"
	coremetrics "github.com/relaykit/relay/core/metrics"
	"github.com/relaykit/relay/core/model"
	"github.com/relaykit/relay/core/subject"
	"github.com/relaykit/relay/infra/logger"
	"github.com/relaykit/relay/infra/metrics"
)

// Service wires the hub, its subscribers and the synthetic publishers of the
// demo, using the sinks and logger selected in the configuration.
type Service struct {
	hub  *hub.Hub
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.Sink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.NewWithBackend(cfg.Logging.Backend, "service")
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	h := hub.New(
		hub.WithLogger(logger.NewWithBackend(cfg.Logging.Backend, "hub")),
		hub.WithSink(sink),
	)
	return &Service{hub: h, cfg: cfg, log: logg, sink: sink}, nil
}

// Run starts the demo and blocks until every publisher finished or the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	// First in the chain: acknowledge informational alerts so the
	// escalation path below skips them.
	ackSub, err := hub.Subscribe(s.hub, func(a *model.Alert) {
		if a.Severity == model.SeverityInfo {
			a.Handled = true
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe acknowledger: %w", err)
	}
	defer ackSub.Dispose()

	unhandled, err := subject.Where[model.Alert](hub.Of[model.Alert](s.hub),
		func(a *model.Alert) bool { return !a.Handled })
	if err != nil {
		return fmt.Errorf("where: %w", err)
	}
	escSub, err := subject.SubscribeFunc(unhandled, func(a *model.Alert) {
		s.log.Warnf("unhandled %s alert from %s: %s", a.Severity, a.Source, a.Message)
	})
	if err != nil {
		return fmt.Errorf("subscribe escalation: %w", err)
	}
	defer escSub.Dispose()

	hbSub, err := hub.SubscribeValue(s.hub, func(hb model.Heartbeat) {
		s.log.Debugw("heartbeat", map[string]any{"seq": hb.Seq})
	})
	if err != nil {
		return fmt.Errorf("subscribe heartbeat: %w", err)
	}
	defer hbSub.Dispose()

	if port := s.cfg.Metrics.PrometheusPort; port != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, port); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	interval := time.Duration(s.cfg.Demo.IntervalMS) * time.Millisecond
	severities := []model.Severity{model.SeverityInfo, model.SeverityWarning, model.SeverityCritical}
	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Demo.Publishers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			source := fmt.Sprintf("publisher-%d", id)
			for n := 0; n < s.cfg.Demo.Events; n++ {
				if interval > 0 {
					select {
					case <-ctx.Done():
						return
					case <-time.After(interval):
					}
				}
				a := model.NewAlert(severities[n%len(severities)], source, fmt.Sprintf("synthetic event %d", n))
				if err := hub.Publish(s.hub, &a); err != nil {
					s.log.Errorf("publish alert: %v", err)
					return
				}
				if err := hub.PublishValue(s.hub, model.Heartbeat{Seq: n, Time: time.Now()}); err != nil {
					s.log.Errorf("publish heartbeat: %v", err)
					return
				}
			}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		<-done
	case <-done:
	}

	if rep, ok := s.sink.(coremetrics.SummaryReporter); ok {
		if summary := rep.Summary(); summary != "" {
			s.log.Infof("publish summary: %s", summary)
		}
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.hub.Close()
	return nil
}
