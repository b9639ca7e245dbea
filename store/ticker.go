package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hupe1980/supplymesh/core"
	"github.com/hupe1980/supplymesh/logging"
)

// Ticker drives the store's periodic perturbation at a fixed cadence. The
// Store itself is cadence-agnostic; the Ticker is the external scheduler
// collaborator, packaged here for convenience. Ticks before the first
// configuration are skipped silently.
type Ticker struct {
	store    *Store
	interval time.Duration
	logger   logging.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewTicker creates a Ticker for the given store. Intervals at or below zero
// fall back to 4 seconds.
func NewTicker(s *Store, interval time.Duration, logger logging.Logger) *Ticker {
	if interval <= 0 {
		interval = 4 * time.Second
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Ticker{store: s, interval: interval, logger: logger}
}

// Start launches the tick loop. It returns an error if the ticker is already
// running. The loop stops when Stop is called or ctx is cancelled.
func (t *Ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return errors.New("ticker is already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	go t.loop(ctx)
	return nil
}

// Stop halts the tick loop and waits for it to exit. It returns an error if
// the ticker is not running.
func (t *Ticker) Stop() error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return errors.New("ticker is not running")
	}
	t.cancel()
	done := t.done
	t.running = false
	t.mu.Unlock()

	<-done
	return nil
}

func (t *Ticker) loop(ctx context.Context) {
	defer close(t.done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := t.store.Tick(); err != nil {
				if errors.Is(err, core.ErrEmptyNetworkState) {
					continue // no configuration yet
				}
				t.logger.Error("Tick failed", "error", err.Error())
			}
		}
	}
}
