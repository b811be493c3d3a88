package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned by single-document fetches when nothing matches.
var ErrNotFound = errors.New("sanity: document not found")

// Client talks to the Sanity query HTTP API. It is read-only, safe for
// concurrent use and lives for the length of the process; construct one in
// main and pass it to whatever needs it.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	baseURL    string
	httpClient *http.Client
}

// Options configures a Client.
type Options struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	// Token is only needed for private datasets.
	Token string
	// UseCDN routes queries through the cached apicdn endpoint.
	UseCDN bool
	// BaseURL overrides the derived API URL. Tests point it at a local server.
	BaseURL string
}

// NewClient creates a content store client.
func NewClient(opts Options) *Client {
	host := "api.sanity.io"
	if opts.UseCDN {
		host = "apicdn.sanity.io"
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.%s", opts.ProjectID, host)
	}
	return &Client{
		projectID:  opts.ProjectID,
		dataset:    opts.Dataset,
		apiVersion: opts.APIVersion,
		token:      opts.Token,
		baseURL:    baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProjectID reports the configured project, used for asset URL resolution.
func (c *Client) ProjectID() string { return c.projectID }

// Dataset reports the configured dataset.
func (c *Client) Dataset() string { return c.dataset }

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Fetch executes a query and decodes the result into into. Params values are
// JSON-encoded and bound to $name references in the query. A null result
// (a [0] query with no match) is reported as ErrNotFound; an empty list is a
// valid empty result.
func (c *Client) Fetch(ctx context.Context, query *Query, params map[string]any, into any) error {
	raw, err := c.fetchRaw(ctx, query.Build(), params)
	if err != nil {
		return err
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		if query.first {
			return ErrNotFound
		}
		return nil
	}

	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode query result: %w", err)
	}
	return nil
}

// Ping runs a trivial query to verify the store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.fetchRaw(ctx, "count(*[_id == 'ping'])", nil)
	return err
}

func (c *Client) fetchRaw(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.baseURL, c.apiVersion, c.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("query failed: %s (%d)", string(body), resp.StatusCode)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	return qr.Result, nil
}
