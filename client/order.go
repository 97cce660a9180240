package client

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

type orderItemPayload struct {
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Product  string  `json:"product"`
	Store    string  `json:"store"`
}

type orderPayload struct {
	OrderItems      []orderItemPayload `json:"orderItems"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	TotalPrice      float64            `json:"totalPrice"`
}

// OrderResult carries the outcome of an order submission. RawBody always
// holds the server's response body, success or failure, so front ends can
// render it for inspection.
type OrderResult struct {
	Status  int
	RawBody []byte
	Order   json.RawMessage
}

type orderResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// PlaceOrder validates the product details, builds a single-item order
// against the resolved catalog references, and submits it with the session
// token. Without a token it fails before any network call. On a rejected
// submission the returned OrderResult is still populated so the raw
// response can be shown.
func (c *Client) PlaceOrder(ctx context.Context, productName, category, brand string, qty int) (*OrderResult, error) {
	if !c.session.Authenticated() {
		return nil, ErrAuthenticationRequired
	}

	if productName == "" {
		return nil, &ValidationError{Field: "product name", Reason: "must not be empty"}
	}
	if category == "" {
		return nil, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if brand == "" {
		return nil, &ValidationError{Field: "brand", Reason: "must not be empty"}
	}
	if qty < 1 {
		return nil, &ValidationError{Field: "qty", Reason: "must be an integer of at least 1"}
	}

	refs, err := c.catalog.Resolve(ctx, productName)
	if err != nil {
		return nil, err
	}

	payload := orderPayload{
		OrderItems: []orderItemPayload{{
			Name:     productName,
			Qty:      qty,
			Price:    refs.UnitPrice,
			Category: category,
			Brand:    brand,
			Product:  refs.ProductID,
			Store:    refs.StoreID,
		}},
		ShippingAddress: c.shipping,
		PaymentMethod:   "Simulated",
		TotalPrice:      refs.UnitPrice * float64(qty),
	}

	token := c.session.Token()
	status, raw, err := c.do(ctx, http.MethodPost, "/orders", token, payload)
	if err != nil {
		return nil, err
	}

	result := &OrderResult{Status: status, RawBody: raw}

	if status == http.StatusUnauthorized {
		// The server no longer honors this token; drop it.
		if err := c.session.SetToken(""); err != nil {
			log.Printf("[client] failed to clear rejected token: %v", err)
		}
	}

	if !isSuccess(status) {
		failure := parseFailure(raw)
		log.Printf("[client] order submission failed: status=%d body=%s", status, raw)
		return result, &SubmissionError{Status: status, Code: failure.Code, Message: failure.Message}
	}

	var resp orderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return result, &TransportError{Op: "decode order response", Err: err}
	}
	result.Order = resp.Data

	return result, nil
}
