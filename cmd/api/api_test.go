package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vitrina/internal/browser"
	"vitrina/internal/catalog"
	"vitrina/internal/ratelimiter"
)

type stubSource struct {
	mu       sync.Mutex
	products []*catalog.Product
	fetchErr error
	incLog   []string
}

func (s *stubSource) FetchAll(ctx context.Context) ([]*catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.products, nil
}

func (s *stubSource) FetchByCategoryLabels(ctx context.Context, labels []string) ([]*catalog.Product, error) {
	return s.FetchAll(ctx)
}

func (s *stubSource) IncrementPopularity(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incLog = append(s.incLog, productID)
	return nil
}

func testProducts(now time.Time) []*catalog.Product {
	return []*catalog.Product{
		{ID: "p1", Title: "Trail shoes", Categories: []string{"footwear"}, CreatedAt: now.Add(-time.Hour)},
		{ID: "p2", Title: "Rain jacket", Categories: []string{"apparel"}, Media: []string{"a.jpg", "b.mp4"}, CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func newTestApplication(t *testing.T, src *stubSource) *application {
	t.Helper()

	cfg := config{
		addr: ":0",
		env:  "test",
		auth: basicConfig{user: "admin", pass: "secret"},
		catalog: catalogConfig{
			settleDelay: 5 * time.Millisecond,
		},
	}

	sessions := newSessionStore(time.Minute)
	t.Cleanup(sessions.stop)

	return &application{
		config:      cfg,
		logger:      zap.NewNop().Sugar(),
		source:      src,
		sessions:    sessions,
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Second),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func createSession(t *testing.T, mux http.Handler) string {
	t.Helper()

	rr := executeRequest(httptest.NewRequest(http.MethodPost, "/v1/sessions", nil), mux)
	require.Equal(t, http.StatusCreated, rr.Code)

	var body struct {
		Data createSessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.SessionID)
	return body.Data.SessionID
}

func fetchView(t *testing.T, mux http.Handler, sessionID, query string) browser.View {
	t.Helper()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/sessions/"+sessionID+"/view"+query, nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data browser.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Data
}

func TestHealthCheck(t *testing.T) {
	app := newTestApplication(t, &stubSource{})
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/health", nil), mux)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestSessionLifecycle(t *testing.T) {
	src := &stubSource{products: testProducts(time.Now())}
	app := newTestApplication(t, src)
	mux := app.mount()

	id := createSession(t, mux)

	// The initial load is asynchronous.
	require.Eventually(t, func() bool {
		return len(fetchView(t, mux, id, "").Products) == 2
	}, time.Second, 10*time.Millisecond)

	view := fetchView(t, mux, id, "")
	assert.Empty(t, view.LoadError)
	assert.Len(t, view.Categories, 2)
}

func TestViewUnknownSession(t *testing.T) {
	app := newTestApplication(t, &stubSource{})
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/sessions/nope/view", nil), mux)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestToggleCategoryFiltersGrid(t *testing.T) {
	src := &stubSource{products: testProducts(time.Now())}
	app := newTestApplication(t, src)
	mux := app.mount()

	id := createSession(t, mux)
	require.Eventually(t, func() bool {
		return len(fetchView(t, mux, id, "").Products) == 2
	}, time.Second, 10*time.Millisecond)

	rr := executeRequest(httptest.NewRequest(http.MethodPut, "/v1/sessions/"+id+"/categories/footwear", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	view := fetchView(t, mux, id, "")
	require.Len(t, view.Products, 1)
	assert.Equal(t, "p1", view.Products[0].ID)
	assert.Equal(t, []string{"footwear"}, view.RequiredCategories)

	// Toggling again removes the filter.
	executeRequest(httptest.NewRequest(http.MethodPut, "/v1/sessions/"+id+"/categories/footwear", nil), mux)
	assert.Len(t, fetchView(t, mux, id, "").Products, 2)
}

func TestSearchSettles(t *testing.T) {
	src := &stubSource{products: testProducts(time.Now())}
	app := newTestApplication(t, src)
	mux := app.mount()

	id := createSession(t, mux)
	require.Eventually(t, func() bool {
		return len(fetchView(t, mux, id, "").Products) == 2
	}, time.Second, 10*time.Millisecond)

	payload := bytes.NewBufferString(`{"search":"jacket"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/sessions/"+id+"/search", payload)
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusAccepted, rr.Code)

	require.Eventually(t, func() bool {
		v := fetchView(t, mux, id, "")
		return v.Search == "jacket" && len(v.Products) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDetailFlow(t *testing.T) {
	src := &stubSource{products: testProducts(time.Now())}
	app := newTestApplication(t, src)
	mux := app.mount()

	id := createSession(t, mux)
	require.Eventually(t, func() bool {
		return len(fetchView(t, mux, id, "").Products) == 2
	}, time.Second, 10*time.Millisecond)

	rr := executeRequest(httptest.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/detail/p2", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	view := fetchView(t, mux, id, "")
	require.NotNil(t, view.Detail)
	assert.Equal(t, "p2", view.Detail.Product.ID)
	assert.Equal(t, 0, view.Detail.MediaIndex)
	assert.Equal(t, "a.jpg", view.Detail.ActiveMedia)

	payload := bytes.NewBufferString(`{"index":5}`)
	rr = executeRequest(httptest.NewRequest(http.MethodPut, "/v1/sessions/"+id+"/detail/media", payload), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	view = fetchView(t, mux, id, "")
	require.NotNil(t, view.Detail)
	assert.Equal(t, 1, view.Detail.MediaIndex)
	assert.True(t, view.Detail.MediaIsVideo)

	rr = executeRequest(httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+id+"/detail", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, fetchView(t, mux, id, "").Detail)

	// Opening an unknown product leaves the closed state alone.
	rr = executeRequest(httptest.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/detail/ghost", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, fetchView(t, mux, id, "").Detail)
}

func TestReloadKeepsPriorCollectionOnFailure(t *testing.T) {
	src := &stubSource{products: testProducts(time.Now())}
	app := newTestApplication(t, src)
	mux := app.mount()

	id := createSession(t, mux)
	require.Eventually(t, func() bool {
		return len(fetchView(t, mux, id, "").Products) == 2
	}, time.Second, 10*time.Millisecond)

	src.mu.Lock()
	src.fetchErr = context.DeadlineExceeded
	src.mu.Unlock()

	rr := executeRequest(httptest.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/reload", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	view := fetchView(t, mux, id, "")
	assert.Len(t, view.Products, 2)
	assert.NotEmpty(t, view.LoadError)
}

func TestDebugVarsRequiresBasicAuth(t *testing.T) {
	app := newTestApplication(t, &stubSource{})
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/debug/vars", nil), mux)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/debug/vars", nil)
	req.SetBasicAuth("admin", "secret")
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)
}
