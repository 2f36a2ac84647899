// Package payment hands a submitted order off to the hosted Razorpay
// widget. A short-lived local server serves the checkout page and
// receives the widget's proof callback; the proof is returned to the
// caller, which drives verification through the order workflow.
package payment

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/order"
)

// ErrAbandoned is returned when the caller gives up before the widget
// reports a payment. The widget has no cancellation callback; walking
// away is the only exit.
var ErrAbandoned = errors.New("checkout abandoned before payment completed")

// Prefill seeds the widget's contact fields from the profile.
type Prefill struct {
	Name    string
	Email   string
	Contact string
}

type Checkout struct {
	addr   string
	logger *zap.Logger
}

func NewCheckout(addr string, logger *zap.Logger) *Checkout {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checkout{addr: addr, logger: logger}
}

// callbackRequest is the proof the checkout page posts back after the
// widget's handler fires.
type callbackRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" form:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" form:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" form:"razorpay_signature" binding:"required"`
}

// Collect serves the checkout page for the handle and blocks until the
// widget posts its proof or ctx is cancelled. Each call is a single
// attempt keyed by a fresh reference; stale callbacks are rejected.
// onReady, if non-nil, receives the checkout URL once the local server
// is listening.
func (c *Checkout) Collect(ctx context.Context, handle order.PaymentHandle, prefill Prefill, onReady func(url string)) (api.PaymentProof, error) {
	ref := uuid.NewString()
	proofCh := make(chan api.PaymentProof, 1)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}))

	router.GET("/checkout/:ref", func(g *gin.Context) {
		if g.Param("ref") != ref {
			g.JSON(http.StatusNotFound, gin.H{"error": "unknown checkout attempt"})
			return
		}
		g.Header("Content-Type", "text/html; charset=utf-8")
		g.Status(http.StatusOK)
		if err := checkoutPage.Execute(g.Writer, checkoutData{
			Ref:             ref,
			Key:             handle.Key,
			RazorpayOrderID: handle.RazorpayOrderID,
			AmountPaise:     handle.AmountPaise,
			Prefill:         prefill,
		}); err != nil {
			c.logger.Warn("failed to render checkout page", zap.Error(err))
		}
	})

	router.POST("/callback/:ref", func(g *gin.Context) {
		if g.Param("ref") != ref {
			g.JSON(http.StatusForbidden, gin.H{"error": "unknown checkout attempt"})
			return
		}
		var req callbackRequest
		if err := g.ShouldBind(&req); err != nil {
			g.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment callback: " + err.Error()})
			return
		}
		if req.RazorpayOrderID != handle.RazorpayOrderID {
			g.JSON(http.StatusBadRequest, gin.H{"error": "payment does not match this order"})
			return
		}
		proof := api.PaymentProof{
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpaySignature: req.RazorpaySignature,
		}
		select {
		case proofCh <- proof:
		default:
			// Duplicate callback for the same attempt; first one wins.
		}
		g.JSON(http.StatusOK, gin.H{"success": true})
	})

	ln, err := net.Listen("tcp", c.addr)
	if err != nil {
		return api.PaymentProof{}, fmt.Errorf("start checkout server: %w", err)
	}

	srv := &http.Server{Handler: router}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://%s/checkout/%s", ln.Addr().String(), ref)
	c.logger.Info("payment checkout ready",
		zap.String("url", url),
		zap.String("order_id", handle.OrderID))
	if onReady != nil {
		onReady(url)
	}

	select {
	case proof := <-proofCh:
		return proof, nil
	case err := <-errCh:
		return api.PaymentProof{}, fmt.Errorf("checkout server failed: %w", err)
	case <-ctx.Done():
		return api.PaymentProof{}, ErrAbandoned
	}
}

type checkoutData struct {
	Ref             string
	Key             string
	RazorpayOrderID string
	AmountPaise     int64
	Prefill         Prefill
}

var checkoutPage = template.Must(template.New("checkout").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Pizza Order Payment</title>
  <script src="https://checkout.razorpay.com/v1/checkout.js"></script>
</head>
<body>
  <p id="status">Opening payment window...</p>
  <script>
    var options = {
      key: {{.Key}},
      amount: {{.AmountPaise}},
      currency: "INR",
      name: "Pizza Ordering App",
      description: "Pizza Order Payment",
      order_id: {{.RazorpayOrderID}},
      prefill: {
        name: {{.Prefill.Name}},
        email: {{.Prefill.Email}},
        contact: {{.Prefill.Contact}}
      },
      theme: { color: "#F37254" },
      handler: function (response) {
        fetch("/callback/{{.Ref}}", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(response)
        }).then(function () {
          document.getElementById("status").textContent =
            "Payment received. You can close this window.";
        });
      }
    };
    new Razorpay(options).open();
  </script>
</body>
</html>
`))
