package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Store is one store in a nearby-search result.
type Store struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

type storeSearchResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Data    []Store `json:"data"`
}

// SearchStores finds stores within distanceKm of the given coordinates.
// The endpoint itself is public, but the operation is gated on a session
// token so anonymous users are prompted to log in first.
func (c *Client) SearchStores(ctx context.Context, latitude, longitude, distanceKm float64) ([]Store, error) {
	if !c.session.Authenticated() {
		return nil, ErrAuthenticationRequired
	}

	path := fmt.Sprintf("/stores/nearby?latitude=%g&longitude=%g&distance=%g", latitude, longitude, distanceKm)
	status, raw, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		failure := parseFailure(raw)
		return nil, &SubmissionError{Status: status, Code: failure.Code, Message: failure.Message}
	}

	var resp storeSearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &TransportError{Op: "decode store search response", Err: err}
	}

	return resp.Data, nil
}
