package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vitrina/internal/catalog"
)

// RESTSource talks to a PostgREST-style row-filter API: the products table
// is exposed at {base}/rest/v1/{table} and the popularity increment is a
// stored procedure at {base}/rest/v1/rpc/increment_popularity.
type RESTSource struct {
	baseURL    string
	apiKey     string
	table      string
	httpClient *http.Client
}

func NewRESTSource(baseURL, apiKey, table string) *RESTSource {
	if table == "" {
		table = "products"
	}
	return &RESTSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		table:   table,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *RESTSource) tableURL() string {
	return fmt.Sprintf("%s/rest/v1/%s", s.baseURL, s.table)
}

func (s *RESTSource) FetchAll(ctx context.Context) ([]*catalog.Product, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	return s.fetch(ctx, "fetch all", q)
}

func (s *RESTSource) FetchByCategoryLabels(ctx context.Context, labels []string) ([]*catalog.Product, error) {
	if len(labels) == 0 {
		return s.FetchAll(ctx)
	}
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	// cs = contains: the row's category array must hold every label.
	q.Set("categories", fmt.Sprintf("cs.{%s}", strings.Join(labels, ",")))
	return s.fetch(ctx, "fetch by categories", q)
}

func (s *RESTSource) fetch(ctx context.Context, op string, q url.Values) ([]*catalog.Product, error) {
	reqURL := s.tableURL() + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, newError(op, err)
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, newError(op, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, newError(op, fmt.Errorf("http=%d body=%s", resp.StatusCode, string(raw)))
	}

	var records []*catalog.Product
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, newError(op, fmt.Errorf("decode: %w", err))
	}
	return records, nil
}

func (s *RESTSource) IncrementPopularity(ctx context.Context, productID string) error {
	payload, _ := json.Marshal(map[string]string{"product_id": productID})

	reqURL := fmt.Sprintf("%s/rest/v1/rpc/increment_popularity", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(payload))
	if err != nil {
		return newError("increment popularity", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return newError("increment popularity", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return newError("increment popularity", fmt.Errorf("http=%d body=%s", resp.StatusCode, string(raw)))
	}
	return nil
}

func (s *RESTSource) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
}
