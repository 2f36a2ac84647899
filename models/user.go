package models

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated profile cached by the session store. The
// backend is authoritative; the client never merges fields itself.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// IsAdmin reports whether the profile may use the admin console.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ShippingInfo is the delivery address snapshot attached to an order.
type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
	PhoneNo string `json:"phoneNo"`
}

// Validate checks the snapshot before any order is submitted.
func (s ShippingInfo) Validate() error {
	var missing []string
	if s.Address == "" {
		missing = append(missing, "address")
	}
	if s.City == "" {
		missing = append(missing, "city")
	}
	if s.State == "" {
		missing = append(missing, "state")
	}
	if s.Country == "" {
		missing = append(missing, "country")
	}
	if s.PinCode == "" {
		missing = append(missing, "pin code")
	}
	if s.PhoneNo == "" {
		missing = append(missing, "phone number")
	}
	if len(missing) > 0 {
		return errors.New("missing shipping fields: " + strings.Join(missing, ", "))
	}
	return nil
}
