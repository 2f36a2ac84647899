package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/order"
)

func testHandle() order.PaymentHandle {
	return order.PaymentHandle{
		OrderID:         "ord-1",
		RazorpayOrderID: "rzp-order-77",
		Key:             "rzp_test_key",
		AmountPaise:     24000,
	}
}

// startCollect runs Collect on a random port and returns the attempt's
// checkout URL plus a channel with the outcome.
func startCollect(t *testing.T, ctx context.Context) (string, <-chan api.PaymentProof, <-chan error) {
	t.Helper()

	checkout := NewCheckout("127.0.0.1:0", nil)
	urlCh := make(chan string, 1)
	proofCh := make(chan api.PaymentProof, 1)
	errCh := make(chan error, 1)

	go func() {
		proof, err := checkout.Collect(ctx, testHandle(), Prefill{Name: "Raj", Email: "raj@example.com"},
			func(url string) { urlCh <- url })
		if err != nil {
			errCh <- err
			return
		}
		proofCh <- proof
	}()

	select {
	case url := <-urlCh:
		return url, proofCh, errCh
	case err := <-errCh:
		t.Fatalf("checkout never came up: %v", err)
		return "", nil, nil
	case <-time.After(3 * time.Second):
		t.Fatal("checkout never reported ready")
		return "", nil, nil
	}
}

// callbackURL swaps the checkout path for the callback path, keeping
// the attempt reference.
func callbackURL(checkoutURL string) string {
	return strings.Replace(checkoutURL, "/checkout/", "/callback/", 1)
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestCollectServesCheckoutPage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	url, _, _ := startCollect(t, ctx)

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "rzp-order-77")
	assert.Contains(t, string(page), "rzp_test_key")
	assert.Contains(t, string(page), "checkout.razorpay.com")
}

func TestCollectReturnsProof(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url, proofCh, errCh := startCollect(t, ctx)

	resp := postJSON(t, callbackURL(url), map[string]string{
		"razorpay_order_id":   "rzp-order-77",
		"razorpay_payment_id": "pay-9",
		"razorpay_signature":  "sig-9",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case proof := <-proofCh:
		assert.Equal(t, api.PaymentProof{
			RazorpayOrderID:   "rzp-order-77",
			RazorpayPaymentID: "pay-9",
			RazorpaySignature: "sig-9",
		}, proof)
	case err := <-errCh:
		t.Fatalf("collect failed: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("proof never delivered")
	}
}

func TestCollectRejectsBadCallbacks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	url, _, errCh := startCollect(t, ctx)

	t.Run("mismatched razorpay order", func(t *testing.T) {
		resp := postJSON(t, callbackURL(url), map[string]string{
			"razorpay_order_id":   "someone-elses-order",
			"razorpay_payment_id": "pay-9",
			"razorpay_signature":  "sig-9",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("stale attempt reference", func(t *testing.T) {
		stale := url[:strings.LastIndex(url, "/")] + "/00000000-0000-0000-0000-000000000000"
		resp := postJSON(t, callbackURL(stale), map[string]string{
			"razorpay_order_id":   "rzp-order-77",
			"razorpay_payment_id": "pay-9",
			"razorpay_signature":  "sig-9",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing proof fields", func(t *testing.T) {
		resp := postJSON(t, callbackURL(url), map[string]string{
			"razorpay_order_id": "rzp-order-77",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	// None of the bad callbacks completed the attempt; abandoning it is
	// the only way out.
	cancel()
	assert.ErrorIs(t, <-errCh, ErrAbandoned)
}

func TestCollectAbandonment(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checkout := NewCheckout("127.0.0.1:0", nil)
	_, err := checkout.Collect(ctx, testHandle(), Prefill{}, nil)
	assert.ErrorIs(t, err, ErrAbandoned)
}
