// Package sanity is a minimal HTTP client for the Sanity content store:
// GROQ queries on the read side, document creation on the write side.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config identifies the project and dataset the client talks to. Token
// is only required for writes.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

// Client talks to the Sanity HTTP API.
type Client struct {
	config Config
	client *http.Client

	// baseOverride replaces the computed API base URL in tests.
	baseOverride string
}

// NewClient creates a Sanity client.
func NewClient(config Config) *Client {
	if config.APIVersion == "" {
		config.APIVersion = "2025-01-01"
	}
	return &Client{
		config: config,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CanWrite reports whether this client is allowed to create documents.
func (c *Client) CanWrite() bool {
	return c.config.Token != "" && c.config.ProjectID != "" && c.config.Dataset != ""
}

func (c *Client) baseURL(useCDN bool) string {
	if c.baseOverride != "" {
		return c.baseOverride
	}
	host := "api.sanity.io"
	if useCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s", c.config.ProjectID, host, c.config.APIVersion)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// Query runs a GROQ query and decodes the result into result. Params
// are exposed to the query as $-prefixed variables, JSON-encoded per
// the Sanity query API.
func (c *Client) Query(ctx context.Context, query string, params map[string]interface{}, result interface{}) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL(c.config.UseCDN), c.config.Dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create query request: %w", err)
	}
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query content store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("query", resp)
	}

	var wrapper queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return fmt.Errorf("failed to decode query response: %w", err)
	}

	if result != nil && len(wrapper.Result) > 0 {
		if err := json.Unmarshal(wrapper.Result, result); err != nil {
			return fmt.Errorf("failed to decode query result: %w", err)
		}
	}

	return nil
}

type mutation struct {
	Create interface{} `json:"create"`
}

type mutateRequest struct {
	Mutations []mutation `json:"mutations"`
}

// Create writes a new document to the dataset. The document must carry
// its _type field.
func (c *Client) Create(ctx context.Context, doc interface{}) error {
	if !c.CanWrite() {
		return fmt.Errorf("content store write client is not configured")
	}

	body, err := json.Marshal(mutateRequest{
		Mutations: []mutation{{Create: doc}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mutation: %w", err)
	}

	// Writes always bypass the CDN
	endpoint := fmt.Sprintf("%s/data/mutate/%s", c.baseURL(false), c.config.Dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to write to content store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("mutate", resp)
	}

	return nil
}

func apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error.Description != "" {
			return fmt.Errorf("content store %s returned status %d: %s", op, resp.StatusCode, parsed.Error.Description)
		}
		if parsed.Message != "" {
			return fmt.Errorf("content store %s returned status %d: %s", op, resp.StatusCode, parsed.Message)
		}
	}

	return fmt.Errorf("content store %s returned status %d", op, resp.StatusCode)
}
