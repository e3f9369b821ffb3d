// Package client talks to the product API over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rl1809/webstore/internal/core/domain"
)

const maxErrorBody = 4 << 10

// HTTPError represents a non-2xx response from the product API.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// ProductClient reads the product catalog. It makes exactly one request per
// call; there is no retry.
type ProductClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type productPayload struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewProductClient returns a client for the API rooted at baseURL. A nil
// httpClient means http.DefaultClient.
func NewProductClient(baseURL string, httpClient *http.Client) (*ProductClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ProductClient{baseURL: u, httpClient: httpClient}, nil
}

func (c *ProductClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath("product").String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	var payload []productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, domain.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return products, nil
}
