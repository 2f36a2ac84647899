package api

import (
	"context"
	"net/url"

	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

type CreateOrderRequest struct {
	OrderItems   []models.OrderItem  `json:"orderItems"`
	ShippingInfo models.ShippingInfo `json:"shippingInfo"`
}

// CreateOrderResponse carries the persisted order and, when external
// payment is required, the gateway handle the checkout widget needs.
type CreateOrderResponse struct {
	Success         bool         `json:"success"`
	Order           models.Order `json:"order"`
	RazorpayOrderID string       `json:"razorpayOrderId,omitempty"`
	Key             string       `json:"key,omitempty"`
}

// PaymentProof is the callback payload from the payment widget, passed
// to the backend for signature verification. The client never inspects
// the signature itself.
type PaymentProof struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// CreateOrder submits the serialized cart plus shipping snapshot.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.post(ctx, "/api/order/create", req, &resp, "Failed to create order"); err != nil {
		return CreateOrderResponse{}, err
	}
	return resp, nil
}

// VerifyPayment submits the widget's proof for backend verification.
func (c *Client) VerifyPayment(ctx context.Context, proof PaymentProof) (models.Order, error) {
	var resp struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	if err := c.post(ctx, "/api/order/payment/verify", proof, &resp, "Payment verification failed"); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// MyOrders fetches the caller's order history, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Success bool           `json:"success"`
		Data    []models.Order `json:"data"`
	}
	if err := c.get(ctx, "/api/order/my-orders", &resp, "Failed to fetch orders"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// OrderByID fetches a single order.
func (c *Client) OrderByID(ctx context.Context, id string) (models.Order, error) {
	var resp struct {
		Success bool         `json:"success"`
		Data    models.Order `json:"data"`
	}
	if err := c.get(ctx, "/api/order/"+url.PathEscape(id), &resp, "Failed to fetch order"); err != nil {
		return models.Order{}, err
	}
	return resp.Data, nil
}

// CancelOrder asks the backend to transition the order to Cancelled.
func (c *Client) CancelOrder(ctx context.Context, id string) (models.Order, error) {
	var resp struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	path := "/api/order/" + url.PathEscape(id) + "/cancel"
	if err := c.put(ctx, path, nil, &resp, "Failed to cancel order"); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// UpdateOrderStatus sets the kitchen status (admin).
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	var resp struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	body := map[string]string{"orderStatus": string(status)}
	path := "/api/order/" + url.PathEscape(id) + "/status"
	if err := c.put(ctx, path, body, &resp, "Failed to update order status"); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// AllOrders fetches every order in the system (admin).
func (c *Client) AllOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Success bool           `json:"success"`
		Data    []models.Order `json:"data"`
	}
	if err := c.get(ctx, "/api/admin/orders", &resp, "Failed to fetch orders"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
