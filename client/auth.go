package client

import (
	"context"
	"encoding/json"
	"net/http"
)

type authRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string `json:"token"`
}

// LoginResult reports the outcome of a login attempt. NeedsRegistration is
// the two-phase fallback signal: the account does not exist, and the caller
// may collect a display name and call Register to onboard it. Declining
// leaves the session exactly as it was.
type LoginResult struct {
	Token             string
	NeedsRegistration bool
	Message           string
}

// Register creates a new customer account and installs the returned token.
// On failure the session is left untouched.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" {
		return "", &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if email == "" {
		return "", &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return "", &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	status, raw, err := c.do(ctx, http.MethodPost, "/auth/register", "", authRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     "customer",
	})
	if err != nil {
		return "", err
	}

	if !isSuccess(status) {
		failure := parseFailure(raw)
		return "", &AuthError{Code: failure.Code, Message: failure.Message}
	}

	var resp authResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &TransportError{Op: "decode register response", Err: err}
	}

	if err := c.session.SetToken(resp.Token); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates with email and password.
//
// Three outcomes:
//   - success: the token is installed and returned;
//   - the account does not exist: NeedsRegistration is set and the session
//     is untouched, so the caller can offer registration;
//   - any other rejection (wrong password included): the session token is
//     cleared defensively and an AuthError is returned.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	status, raw, err := c.do(ctx, http.MethodPost, "/auth/login", "", authRequest{
		Email:    email,
		Password: password,
		Role:     "customer",
	})
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		failure := parseFailure(raw)
		if failure.Code == CodeAccountNotFound {
			return &LoginResult{NeedsRegistration: true, Message: failure.Message}, nil
		}

		if err := c.session.SetToken(""); err != nil {
			return nil, err
		}
		return nil, &AuthError{Code: failure.Code, Message: failure.Message}
	}

	var resp authResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &TransportError{Op: "decode login response", Err: err}
	}

	if err := c.session.SetToken(resp.Token); err != nil {
		return nil, err
	}
	return &LoginResult{Token: resp.Token}, nil
}
