package api

import (
	"context"
	"net/url"

	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ProfileUpdate is a partial profile change. Empty fields are omitted;
// the backend owns the merge semantics.
type ProfileUpdate struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, models.User, error) {
	var resp struct {
		Success bool        `json:"success"`
		Token   string      `json:"token"`
		User    models.User `json:"user"`
	}
	if err := c.post(ctx, "/api/auth/login", creds, &resp, "Login failed"); err != nil {
		return "", models.User{}, err
	}
	return resp.Token, resp.User, nil
}

// Me resolves the profile behind the current token.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var resp struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	if err := c.get(ctx, "/api/auth/me", &resp, "Authentication check failed"); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// Register creates an account. The backend sends a verification mail;
// the returned message tells the user what to do next.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/auth/register", req, &resp, "Registration failed"); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := map[string]string{"email": email}
	if err := c.post(ctx, "/api/auth/forgot-password", body, &resp, "Failed to send reset email"); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, password string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := map[string]string{"password": password}
	path := "/api/auth/reset-password/" + url.PathEscape(token)
	if err := c.put(ctx, path, body, &resp, "Password reset failed"); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyEmail redeems a mailed verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := "/api/auth/verify-email/" + url.PathEscape(token)
	if err := c.get(ctx, path, &resp, "Email verification failed"); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateProfile submits a partial update and returns the server's copy.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (models.User, error) {
	var resp struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Data    models.User `json:"data"`
	}
	if err := c.put(ctx, "/api/user/profile", update, &resp, "Profile update failed"); err != nil {
		return models.User{}, err
	}
	return resp.Data, nil
}

// ChangePassword rotates the password for the current session.
func (c *Client) ChangePassword(ctx context.Context, current, next string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}
	if err := c.put(ctx, "/api/user/change-password", body, &resp, "Password change failed"); err != nil {
		return "", err
	}
	return resp.Message, nil
}
