package retail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"retailbrain-dashboard/pkg/models"
)

// Client talks to the RetailBrain analytics backend. It issues exactly one
// HTTP call per method, decodes whatever JSON body comes back (including
// bodies that carry an application-level "error" field) and reports only
// network-level failures as Go errors. Retries, caching and request
// deduplication are deliberately absent.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client with the given base URL and timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// ForecastParams are forwarded verbatim as query parameters. Only the product
// name is validated upstream; the backend coerces the rest.
type ForecastParams struct {
	Product      string
	Days         string
	LeadTimeDays string
	ServiceLevel string
}

// UploadSales submits a CSV payload as the multipart form field "file".
func (c *Client) UploadSales(ctx context.Context, filename string, content []byte) (models.UploadResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return models.UploadResponse{}, fmt.Errorf("build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return models.UploadResponse{}, fmt.Errorf("build upload form: %w", err)
	}

	var out models.UploadResponse
	if err := c.call(ctx, http.MethodPost, "/upload", nil, &body, writer.FormDataContentType(), &out); err != nil {
		return models.UploadResponse{}, err
	}
	return out, nil
}

// DashboardMetrics fetches the aggregated dashboard metrics.
func (c *Client) DashboardMetrics(ctx context.Context) (models.DashboardMetricsResponse, error) {
	var out models.DashboardMetricsResponse
	if err := c.call(ctx, http.MethodGet, "/dashboard/metrics", nil, nil, "", &out); err != nil {
		return models.DashboardMetricsResponse{}, err
	}
	return out, nil
}

// Forecast fetches a demand forecast for one product.
func (c *Client) Forecast(ctx context.Context, params ForecastParams) (models.ForecastResponse, error) {
	query := url.Values{}
	query.Set("product", params.Product)
	query.Set("days", params.Days)
	query.Set("lead_time_days", params.LeadTimeDays)
	query.Set("service_level", params.ServiceLevel)

	var out models.ForecastResponse
	if err := c.call(ctx, http.MethodGet, "/forecast", query, nil, "", &out); err != nil {
		return models.ForecastResponse{}, err
	}
	return out, nil
}

// Products fetches the product name list used by the forecast autocomplete.
func (c *Client) Products(ctx context.Context) (models.ProductsResponse, error) {
	var out models.ProductsResponse
	if err := c.call(ctx, http.MethodGet, "/products", nil, nil, "", &out); err != nil {
		return models.ProductsResponse{}, err
	}
	return out, nil
}

// CopilotChat sends one copilot query.
func (c *Client) CopilotChat(ctx context.Context, query string) (models.CopilotResponse, error) {
	values := url.Values{}
	values.Set("query", query)

	var out models.CopilotResponse
	if err := c.call(ctx, http.MethodPost, "/copilot/chat", values, nil, "", &out); err != nil {
		return models.CopilotResponse{}, err
	}
	return out, nil
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	// The backend signals application errors inside 2xx bodies; non-2xx
	// responses still carry JSON. Either way the decoded payload is the
	// caller's to interpret.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}

	return nil
}
