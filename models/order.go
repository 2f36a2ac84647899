package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses, assigned by the kitchen and only displayed here
	OrderStatusProcessing OrderStatus = "Processing"     // Created, payment not confirmed yet
	OrderStatusReceived   OrderStatus = "Order Received" // Paid and acknowledged
	OrderStatusInKitchen  OrderStatus = "In the Kitchen" // Being prepared
	OrderStatusDelivery   OrderStatus = "Sent to Delivery"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ParseOrderStatus maps a raw string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(OrderStatusProcessing)):
		return OrderStatusProcessing, nil
	case strings.ToLower(string(OrderStatusReceived)):
		return OrderStatusReceived, nil
	case strings.ToLower(string(OrderStatusInKitchen)):
		return OrderStatusInKitchen, nil
	case strings.ToLower(string(OrderStatusDelivery)):
		return OrderStatusDelivery, nil
	case strings.ToLower(string(OrderStatusDelivered)):
		return OrderStatusDelivered, nil
	case strings.ToLower(string(OrderStatusCancelled)):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// IsTerminal reports whether the status can no longer change.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanCancel reports whether the client may offer a cancel action.
// The backend decides the actual transition; this only gates the UI.
func (s OrderStatus) CanCancel() bool {
	return !s.IsTerminal()
}

// OrderItem is one line of an order. Quantity is always 1: a topping is
// either on the pizza or it is not.
type OrderItem struct {
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
	Quantity int                `json:"quantity"`
	Category IngredientCategory `json:"category"`
	ItemID   string             `json:"itemId"`
}

// PaymentInfo holds the gateway references the backend recorded.
type PaymentInfo struct {
	RazorpayOrderID   string        `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string        `json:"razorpayPaymentId,omitempty"`
	Status            PaymentStatus `json:"status"`
}

// Order is the backend-owned purchase record. The client holds a
// read-only cached copy, refreshed by polling or explicit re-fetch.
type Order struct {
	ID           string       `json:"_id"`
	UserID       string       `json:"user,omitempty"`
	Items        []OrderItem  `json:"orderItems"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	ItemsPrice   float64      `json:"itemsPrice"`
	TotalPrice   float64      `json:"totalPrice"`
	PaymentInfo  PaymentInfo  `json:"paymentInfo"`
	OrderStatus  OrderStatus  `json:"orderStatus"`
	CreatedAt    time.Time    `json:"createdAt"`
	PaidAt       *time.Time   `json:"paidAt,omitempty"`
	DeliveredAt  *time.Time   `json:"deliveredAt,omitempty"`
}

// Pending reports whether the order is still moving through the kitchen.
func (o Order) Pending() bool {
	switch o.OrderStatus {
	case OrderStatusProcessing, OrderStatusReceived, OrderStatusInKitchen, OrderStatusDelivery:
		return true
	default:
		return false
	}
}
