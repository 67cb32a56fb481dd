package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/models"
)

// APIError is returned for every non-2xx response. Message carries the
// server's "message" field, or the raw body when it is not JSON.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status behind err, or 0 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type userEnvelope struct {
	User models.User `json:"user"`
}

type loginEnvelope struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *APIClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	payload := map[string]string{"nome": name, "email": email, "senha": password}

	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "/usuarios", "", payload, &out); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &out.User, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	payload := map[string]string{"email": email, "senha": password}

	var out loginEnvelope
	if err := c.do(ctx, http.MethodPost, "/logar", "", payload, &out); err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return "", nil, fmt.Errorf("login: token missing from response")
	}
	return out.Token, &out.User, nil
}

func (c *APIClient) Me(ctx context.Context, token string) (*models.User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodGet, "/me", token, nil, &out); err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	return &out.User, nil
}

func (c *APIClient) do(ctx context.Context, method, path, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

	var payload struct {
		Message string `json:"message"`
	}
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}
