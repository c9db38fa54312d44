package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/contract"
	"github.com/clauseguard/clausectl/pkg/domain/risk"
	"github.com/clauseguard/clausectl/pkg/domain/search"
)

const apiPrefix = "/api/v1"

// Client is the typed HTTP client for the ClauseGuard API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: o.timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// HealthStatus is the service liveness answer.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health checks service liveness.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContracts returns metadata for every uploaded contract.
func (c *Client) ListContracts(ctx context.Context) ([]contract.Metadata, error) {
	var out []contract.Metadata
	if err := c.getJSON(ctx, "/contracts/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContract returns metadata for one contract.
func (c *Client) GetContract(ctx context.Context, id string) (*contract.Metadata, error) {
	var out contract.Metadata
	if err := c.getJSON(ctx, "/contracts/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContractClauses returns the extracted clauses of a contract.
func (c *Client) GetContractClauses(ctx context.Context, id string) ([]clause.Extracted, error) {
	var out []clause.Extracted
	if err := c.getJSON(ctx, "/contracts/"+url.PathEscape(id)+"/clauses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadContract sends a contract file for ingestion as a multipart form
// with field "file".
func (c *Client) UploadContract(ctx context.Context, filename string, content io.Reader) (*contract.UploadResult, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finish upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/contracts/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out contract.UploadResult
	if err := c.do(req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a semantic clause search. The response payload is schema
// checked before decoding.
func (c *Client) Search(ctx context.Context, req search.Request) (*search.Response, error) {
	var out search.Response
	if err := c.postJSON(ctx, "/search/", req, &out, searchResponseSchema); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewContract triggers a compliance review and returns the report. The
// response payload is schema checked before decoding.
func (c *Client) ReviewContract(ctx context.Context, id string) (*risk.Report, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/review/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var out risk.Report
	if err := c.do(req, &out, riskReportSchema); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out, nil)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any, schema *payloadSchema) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out, schema)
}

// do executes the request once. There are no retries; a failure surfaces
// exactly once to the calling component.
func (c *Client) do(req *http.Request, out any, schema *payloadSchema) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if out == nil {
		return nil
	}
	if schema != nil {
		if err := schema.check(body); err != nil {
			return err
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
