package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

// Watcher polls the order history while a view is displayed and reports
// status changes. It stops when its context is cancelled; a fetch that
// resolves after cancellation is discarded.
type Watcher struct {
	history  *History
	interval time.Duration
	logger   *zap.Logger
	onChange func(models.Order)
}

func NewWatcher(history *History, interval time.Duration, logger *zap.Logger, onChange func(models.Order)) *Watcher {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		history:  history,
		interval: interval,
		logger:   logger,
		onChange: onChange,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	last := make(map[string]models.OrderStatus)
	for _, ord := range w.history.Orders() {
		last[ord.ID] = ord.OrderStatus
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		orders, err := w.history.Refresh(ctx)
		if err != nil {
			w.logger.Warn("order poll failed", zap.Error(err))
			continue
		}
		if ctx.Err() != nil {
			return
		}

		for _, ord := range orders {
			prev, seen := last[ord.ID]
			last[ord.ID] = ord.OrderStatus
			if seen && prev != ord.OrderStatus && w.onChange != nil {
				w.onChange(ord)
			}
		}
	}
}
