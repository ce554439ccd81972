package region

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/types"
)

// Client fetches region projections from the external region service.
type Client interface {
	GetByID(ctx context.Context, id uuid.UUID) (*types.RegionResponse, error)
	GetByDDD(ctx context.Context, ddd string) (*types.RegionResponse, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("missing region service base URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		log:     log.With("client", "RegionClient"),
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *client) GetByID(ctx context.Context, id uuid.UUID) (*types.RegionResponse, error) {
	return c.get(ctx, "/Region/get-by-id/"+id.String())
}

func (c *client) GetByDDD(ctx context.Context, ddd string) (*types.RegionResponse, error) {
	return c.get(ctx, "/Region/get-by-ddd/"+strings.TrimSpace(ddd))
}

func (c *client) get(ctx context.Context, path string) (*types.RegionResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build region request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("region request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read region response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var out types.RegionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode region response: %w", err)
	}
	return &out, nil
}
