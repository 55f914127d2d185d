package activation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Checker determines whether a recipient's USDC token account has
// already been activated on a particular network.
type Checker interface {
	// IsActivated returns true if a USDC token account already exists
	// for the given address on the given network.
	IsActivated(ctx context.Context, address string, network string) (bool, error)
}

// HTTPChecker is a Checker that consults a remote activation service
// over HTTP.
type HTTPChecker struct {
	httpClient  *http.Client
	endpointURL string
	timeout     time.Duration
}

func NewHTTPChecker(httpClient *http.Client, endpointURL string, timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		httpClient:  httpClient,
		endpointURL: endpointURL,
		timeout:     timeout,
	}
}

type activationRequest struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

type activationResponse struct {
	IsActivated bool `json:"isActivated"`
}

func (c *HTTPChecker) IsActivated(ctx context.Context, address string, network string) (bool, error) {
	requestBody, err := json.Marshal(&activationRequest{
		Address: address,
		Network: network,
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal activation check request: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.endpointURL, bytes.NewReader(requestBody))
	if err != nil {
		return false, fmt.Errorf("failed to build activation check request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return false, fmt.Errorf("failed to execute activation check: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return false, fmt.Errorf("activation check returned unexpected status code %d", response.StatusCode)
	}

	activationStatus := &activationResponse{}
	if err := json.NewDecoder(response.Body).Decode(activationStatus); err != nil {
		return false, fmt.Errorf("failed to decode activation check response: %w", err)
	}

	return activationStatus.IsActivated, nil
}
