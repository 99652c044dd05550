package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"layerswap/pkg/types"
)

const (
	DefaultTimeout = 30 * time.Second

	correlationHeader = "X-LS-CORRELATION-ID"
	apiKeyHeader      = "X-LS-APIKEY"
)

// LayerSwapClient talks to the LayerSwap REST API
type LayerSwapClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

// Option configures a LayerSwapClient
type Option func(*LayerSwapClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(l *LayerSwapClient) { l.http = c }
}

// WithAPIKey authenticates requests that need an API key
func WithAPIKey(key string) Option {
	return func(l *LayerSwapClient) { l.apiKey = key }
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(l *LayerSwapClient) { l.logger = logger }
}

// NewLayerSwapClient creates a new API client for baseURL
func NewLayerSwapClient(baseURL string, opts ...Option) *LayerSwapClient {
	c := &LayerSwapClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSettings retrieves the raw bridge settings
func (c *LayerSwapClient) GetSettings(ctx context.Context) (*types.Settings, error) {
	var resp types.APIResponse[types.Settings]
	if err := c.get(ctx, "/api/settings", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &resp.Data, nil
}

// GetSources retrieves the source routes matching params
func (c *LayerSwapClient) GetSources(ctx context.Context, params url.Values) ([]types.Route, error) {
	var resp types.APIResponse[[]types.Route]
	if err := c.get(ctx, "/api/sources", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	return resp.Data, nil
}

// GetDestinations retrieves the destination routes matching params
func (c *LayerSwapClient) GetDestinations(ctx context.Context, params url.Values) ([]types.Route, error) {
	var resp types.APIResponse[[]types.Route]
	if err := c.get(ctx, "/api/destinations", params, &resp); err != nil {
		return nil, fmt.Errorf("failed to get destinations: %w", err)
	}
	return resp.Data, nil
}

// GetSwap retrieves a swap by id
func (c *LayerSwapClient) GetSwap(ctx context.Context, id string) (*types.Swap, error) {
	if id == "" {
		return nil, fmt.Errorf("swap id is required")
	}
	var resp types.APIResponse[types.Swap]
	if err := c.get(ctx, "/api/swaps/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get swap: %w", err)
	}
	return &resp.Data, nil
}

// APIError is returned for non-2xx responses
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d): %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

func (c *LayerSwapClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	correlationID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(correlationHeader, correlationID)
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	c.logger.Debug("API request", zap.String("url", endpoint), zap.String("correlation_id", correlationID))
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("API response",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		// Try to extract the actual error message from the envelope
		var errResp types.APIResponse[json.RawMessage]
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != nil {
			apiErr.Code = errResp.Error.Code
			apiErr.Message = errResp.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if e, ok := out.(interface{ GetError() *types.APIError }); ok {
		if apiErr := e.GetError(); apiErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
		}
	}

	return nil
}
