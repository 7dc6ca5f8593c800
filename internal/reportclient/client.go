// Package reportclient fetches reports from a finance server and keeps them
// in step with a selected date range.
package reportclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/carson-networks/finance-server/internal/daterange"
)

// BalanceReport is the body of GET /v1/reports/balance.
type BalanceReport struct {
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Balance  int64  `json:"balance"`
}

// IVAReport is the body of GET /v1/reports/iva.
type IVAReport struct {
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	VATCharged    int64  `json:"vatCharged"`
	VATDeductible int64  `json:"vatDeductible"`
	VATNet        int64  `json:"vatNet"`
}

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("report request failed with status %d: %s", e.Status, e.Message)
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// Client calls the report endpoints with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Balance(ctx context.Context, r daterange.Range) (*BalanceReport, error) {
	var out BalanceReport
	if err := c.get(ctx, "balance", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IVA(ctx context.Context, r daterange.Range) (*IVAReport, error) {
	var out IVAReport
	if err := c.get(ctx, "iva", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, kind string, r daterange.Range, out any) error {
	query := url.Values{}
	query.Set("from", r.FromDate())
	query.Set("to", r.ToDate())
	endpoint := c.baseURL + "/v1/reports/" + kind + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s report: %w", kind, err)
	}
	return nil
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
