// Package client implements the customer-facing side of the shoplocal API:
// session management, the login/register flow, store search, and order
// submission. It is the library behind cmd/client and is written to be
// driven by any front end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ShippingAddress is attached to every submitted order.
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// DefaultShippingAddress mirrors the demo deployment's fixed address.
var DefaultShippingAddress = ShippingAddress{
	Address:    "456 Web Client St",
	City:       "ClientCity",
	PostalCode: "12345",
}

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api/v1".
	BaseURL string
	// Session holds the bearer token; required.
	Session *Session
	// Catalog resolves product details to catalog references; required for
	// PlaceOrder.
	Catalog CatalogResolver
	// Shipping is the address submitted with orders; defaults to
	// DefaultShippingAddress when zero.
	Shipping ShippingAddress
	// HTTPClient overrides the transport, mainly for tests. Defaults to a
	// client with a 10s timeout.
	HTTPClient *http.Client
}

// Client talks to the shoplocal API on behalf of one customer session.
type Client struct {
	baseURL  string
	http     *http.Client
	session  *Session
	catalog  CatalogResolver
	shipping ShippingAddress
}

// New constructs a Client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	shipping := cfg.Shipping
	if shipping == (ShippingAddress{}) {
		shipping = DefaultShippingAddress
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		http:     httpClient,
		session:  cfg.Session,
		catalog:  cfg.Catalog,
		shipping: shipping,
	}
}

// Session exposes the client's session for state inspection and logout.
func (c *Client) Session() *Session {
	return c.session
}

type apiFailure struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// do issues one JSON request and returns the status and raw body. Network
// and encoding failures come back as TransportError; server responses of
// any status are returned to the caller to interpret.
func (c *Client) do(ctx context.Context, method, path, token string, payload interface{}) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, &TransportError{Op: "encode request", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, &TransportError{Op: "build request", Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: fmt.Sprintf("%s %s", method, path), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: "read response", Err: err}
	}

	return resp.StatusCode, raw, nil
}

func parseFailure(raw []byte) apiFailure {
	var failure apiFailure
	_ = json.Unmarshal(raw, &failure)
	return failure
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
