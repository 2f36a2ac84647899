// Package order drives a cart through submission, payment and
// verification, and keeps the read-only order history cache.
package order

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/cart"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

// State is the phase of a single order attempt.
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StateSubmitting      State = "submitting"
	StateAwaitingPayment State = "awaiting_payment"
	StateVerifying       State = "verifying"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"
)

var (
	// ErrIncompleteCart rejects ordering before the cart has a base,
	// a sauce and at least one cheese. Caught before any network call.
	ErrIncompleteCart = errors.New("cart is not complete: pick a base, a sauce and at least one cheese")

	// ErrNoPaymentDue rejects a payment confirmation when no attempt
	// is awaiting one.
	ErrNoPaymentDue = errors.New("no order is awaiting payment")
)

// PaymentHandle is what the external checkout widget needs to collect
// payment for a submitted order.
type PaymentHandle struct {
	OrderID         string
	RazorpayOrderID string
	Key             string
	AmountPaise     int64
}

// Workflow is the state machine over one in-flight order attempt.
// Completed and Failed are terminal; the next Place starts fresh.
type Workflow struct {
	api    *api.Client
	cart   *cart.Cart
	logger *zap.Logger

	state   State
	message string
	handle  *PaymentHandle
	order   *models.Order
}

func NewWorkflow(client *api.Client, c *cart.Cart, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{
		api:    client,
		cart:   c,
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the current attempt phase.
func (w *Workflow) State() State { return w.state }

// Message returns the user-facing outcome of the last transition.
func (w *Workflow) Message() string { return w.message }

// Handle returns the payment handle while a payment is awaited.
func (w *Workflow) Handle() *PaymentHandle { return w.handle }

// Order returns the backend's copy of the attempt's order, if any.
func (w *Workflow) Order() *models.Order { return w.order }

// Place validates the cart and shipping snapshot, then submits the
// order. It ends in AwaitingPayment (external payment required),
// Completed (no payment needed, cart cleared) or Failed (cart retained
// for correction).
func (w *Workflow) Place(ctx context.Context, shipping models.ShippingInfo) (State, error) {
	w.state = StateValidating
	w.message = ""
	w.handle = nil
	w.order = nil

	if !w.cart.IsComplete() {
		return w.fail(ErrIncompleteCart.Error(), ErrIncompleteCart)
	}
	if err := shipping.Validate(); err != nil {
		return w.fail(err.Error(), err)
	}

	w.state = StateSubmitting
	req := api.CreateOrderRequest{
		OrderItems:   w.cart.OrderItems(),
		ShippingInfo: shipping,
	}

	resp, err := w.api.CreateOrder(ctx, req)
	if err != nil {
		return w.fail(api.UserMessage(err, "Failed to create order"), err)
	}

	w.order = &resp.Order

	if resp.RazorpayOrderID != "" {
		amount := resp.Order.TotalPrice
		if amount == 0 {
			amount = w.cart.TotalPrice()
		}
		w.handle = &PaymentHandle{
			OrderID:         resp.Order.ID,
			RazorpayOrderID: resp.RazorpayOrderID,
			Key:             resp.Key,
			AmountPaise:     toPaise(amount),
		}
		w.state = StateAwaitingPayment
		w.logger.Info("order submitted, awaiting payment",
			zap.String("order_id", resp.Order.ID),
			zap.String("razorpay_order_id", resp.RazorpayOrderID))
		return w.state, nil
	}

	// No payment handle: the backend completed the order outright.
	w.state = StateCompleted
	w.cart.Clear()
	w.logger.Info("order completed without external payment", zap.String("order_id", resp.Order.ID))
	return w.state, nil
}

// ConfirmPayment submits the widget's proof for verification. Only
// valid while a payment is awaited. The cart is cleared strictly after
// the backend confirms.
func (w *Workflow) ConfirmPayment(ctx context.Context, proof api.PaymentProof) (State, error) {
	if w.state != StateAwaitingPayment {
		return w.state, ErrNoPaymentDue
	}

	w.state = StateVerifying
	verified, err := w.api.VerifyPayment(ctx, proof)
	if err != nil {
		// The order keeps its pre-payment status server-side.
		return w.fail(api.UserMessage(err, "Payment verification failed"), err)
	}

	w.order = &verified
	w.handle = nil
	w.state = StateCompleted
	w.cart.Clear()
	w.logger.Info("payment verified", zap.String("order_id", verified.ID))
	return w.state, nil
}

func (w *Workflow) fail(message string, err error) (State, error) {
	w.state = StateFailed
	w.message = message
	w.logger.Warn("order attempt failed", zap.String("reason", message))
	return w.state, err
}

func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
