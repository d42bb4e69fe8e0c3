// Package client submits insurance applications to the intake API.
//
// It carries the same contract as the browser form it replaces: one request
// per Submit call, no retry, and the server's message surfaced on rejection
// when one is available.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Application holds the form fields. Registration is the locally-named
// field; on the wire it becomes registration_number.
type Application struct {
	Name         string
	Phone        string
	Email        string
	VehicleType  string
	Make         string
	Model        string
	Year         string
	Registration string
}

type applyRequest struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	VehicleType        string `json:"vehicle_type"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               string `json:"year"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

type applyResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// APIError is a rejection the server answered with. Message is the
// server-provided text when present, otherwise a generic prompt.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apply rejected (%d): %s", e.Status, e.Message)
}

// TransportError wraps a network-level failure: the request may never have
// reached the server. Callers should prompt the user to try again.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "apply request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// genericFailure mirrors the form's fallback acknowledgment.
const genericFailure = "Please try again."

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit sends one application and returns the assigned identifier.
// Exactly one request is made per call; there is no retry.
func (c *Client) Submit(ctx context.Context, app Application) (uint, error) {
	payload := applyRequest{
		Name:               app.Name,
		Phone:              app.Phone,
		Email:              app.Email,
		VehicleType:        app.VehicleType,
		Make:               app.Make,
		Model:              app.Model,
		Year:               app.Year,
		RegistrationNumber: app.Registration,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode application: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/apply", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var result applyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// A broken body counts as a transport failure, not a rejection.
		return 0, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		message := result.Message
		if message == "" {
			message = genericFailure
		}
		return 0, &APIError{Status: resp.StatusCode, Message: message}
	}

	return result.ID, nil
}
