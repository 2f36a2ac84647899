package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want OrderStatus
	}{
		{"Processing", OrderStatusProcessing},
		{"order received", OrderStatusReceived},
		{"IN THE KITCHEN", OrderStatusInKitchen},
		{"sent to delivery", OrderStatusDelivery},
		{"Delivered", OrderStatusDelivered},
		{"cancelled", OrderStatusCancelled},
	}
	for _, c := range cases {
		got, err := ParseOrderStatus(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got)
	}

	_, err := ParseOrderStatus("shipped")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestOrderStatusLifecycle(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusProcessing, OrderStatusReceived, OrderStatusInKitchen, OrderStatusDelivery} {
		assert.False(t, s.IsTerminal(), string(s))
		assert.True(t, s.CanCancel(), string(s))
		assert.True(t, Order{OrderStatus: s}.Pending(), string(s))
	}
	for _, s := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, s.IsTerminal(), string(s))
		assert.False(t, s.CanCancel(), string(s))
		assert.False(t, Order{OrderStatus: s}.Pending(), string(s))
	}
}

func TestShippingInfoValidate(t *testing.T) {
	full := ShippingInfo{
		Address: "12 MG Road",
		City:    "Pune",
		State:   "Maharashtra",
		Country: "India",
		PinCode: "411001",
		PhoneNo: "9876543210",
	}
	assert.NoError(t, full.Validate())

	missing := full
	missing.PinCode = ""
	missing.PhoneNo = ""
	err := missing.Validate()
	require.Error(t, err)
	assert.Equal(t, "missing shipping fields: pin code, phone number", err.Error())

	assert.Error(t, ShippingInfo{}.Validate())
}
