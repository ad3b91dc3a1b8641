package order

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// Tracker simulates kitchen/delivery progress: it advances a watched order
// one step per interval until the order reaches a terminal state. Only one
// order is animated at a time; watching a new order cancels the previous
// watch, as does Stop or context cancellation.
type Tracker struct {
	svc      *Service
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	watched string
}

// NewTracker creates a Tracker advancing orders via svc every interval.
func NewTracker(svc *Service, interval time.Duration) *Tracker {
	return &Tracker{svc: svc, interval: interval}
}

// Watch starts advancing the given order, replacing any previous watch.
// The returned function stops this watch; it is safe to call twice.
func (t *Tracker) Watch(ctx context.Context, orderID string) context.CancelFunc {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.watched = orderID
	t.mu.Unlock()

	go t.run(runCtx, orderID)
	return cancel
}

// Watched returns the id of the currently animated order, or empty.
func (t *Tracker) Watched() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.watched
}

// Stop cancels the current watch, if any.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
		t.watched = ""
	}
}

func (t *Tracker) run(ctx context.Context, orderID string) {
	lg := zctx.From(ctx).With(zap.String("order_id", orderID))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o, err := t.svc.Advance(ctx, orderID)
			if err != nil {
				lg.Warn("Advance failed, stopping watch", zap.Error(err))
				return
			}
			lg.Info("Order advanced", zap.String("status", string(o.Status)))
			if IsTerminal(o.Status) {
				return
			}
		}
	}
}
