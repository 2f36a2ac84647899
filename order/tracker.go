package order

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

// Tracker follows one order's status live. It subscribes to the
// backend's order feed over websocket and falls back to per-order
// polling when the feed is unavailable.
type Tracker struct {
	api      *api.Client
	tokens   api.TokenSource
	orderID  string
	interval time.Duration
	logger   *zap.Logger
}

func NewTracker(client *api.Client, tokens api.TokenSource, orderID string, interval time.Duration, logger *zap.Logger) *Tracker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		api:      client,
		tokens:   tokens,
		orderID:  orderID,
		interval: interval,
		logger:   logger,
	}
}

// Run streams status updates to onUpdate until the order reaches a
// terminal status or ctx is cancelled.
func (t *Tracker) Run(ctx context.Context, onUpdate func(models.Order)) error {
	conn, err := t.dial(ctx)
	if err != nil {
		t.logger.Info("order feed unavailable, polling instead", zap.Error(err))
		return t.poll(ctx, onUpdate)
	}
	defer conn.Close()

	// Unblock ReadJSON when the caller goes away.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	var lastStatus models.OrderStatus
	for {
		var ord models.Order
		if err := conn.ReadJSON(&ord); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.logger.Warn("order feed dropped, polling instead", zap.Error(err))
			return t.poll(ctx, onUpdate)
		}
		if ord.ID != t.orderID {
			continue
		}
		if ord.OrderStatus == lastStatus {
			continue
		}
		lastStatus = ord.OrderStatus
		if onUpdate != nil {
			onUpdate(ord)
		}
		if ord.OrderStatus.IsTerminal() {
			return nil
		}
	}
}

func (t *Tracker) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsEndpoint(t.api.BaseURL()), header)
	return conn, err
}

func (t *Tracker) poll(ctx context.Context, onUpdate func(models.Order)) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var lastStatus models.OrderStatus
	for {
		ord, err := t.api.OrderByID(ctx, t.orderID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.logger.Warn("order poll failed", zap.Error(err))
		} else {
			if ord.OrderStatus != lastStatus {
				lastStatus = ord.OrderStatus
				if onUpdate != nil {
					onUpdate(ord)
				}
			}
			if ord.OrderStatus.IsTerminal() {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// wsEndpoint maps the backend base URL onto its websocket order feed.
func wsEndpoint(baseURL string) string {
	ws := baseURL
	switch {
	case strings.HasPrefix(ws, "https://"):
		ws = "wss://" + strings.TrimPrefix(ws, "https://")
	case strings.HasPrefix(ws, "http://"):
		ws = "ws://" + strings.TrimPrefix(ws, "http://")
	}
	return ws + "/api/order/ws"
}
