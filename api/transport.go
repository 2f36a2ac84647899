package api

import "net/http"

// TokenSource supplies the current bearer credential. The session store
// is the single holder; nothing else caches the token.
type TokenSource interface {
	Token() string
}

// authTransport attaches the bearer credential to every outgoing request
// and fires the unauthorized hook on any 401. It is the one place token
// plumbing happens.
type authTransport struct {
	base   http.RoundTripper
	client *Client
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tokens := t.client.tokens; tokens != nil {
		if token := tokens.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if hook := t.client.onUnauthorized; hook != nil {
			hook()
		}
	}
	return resp, nil
}
