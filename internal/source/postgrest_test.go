package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTSourceFetchAll(t *testing.T) {
	created := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/products", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"p1","title":"Wallet","created_at":"` + created.Format(time.RFC3339) + `","categories":["leather"]},
			{"id":"p2","title":"Mug","created_at":"` + created.Format(time.RFC3339) + `"}
		]`))
	}))
	defer srv.Close()

	src := NewRESTSource(srv.URL, "test-key", "")
	products, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, []string{"leather"}, products[0].Categories)
	assert.True(t, products[1].CreatedAt.Equal(created))
}

func TestRESTSourceFetchByCategoryLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cs.{leather,bags}", r.URL.Query().Get("categories"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src := NewRESTSource(srv.URL, "k", "products")
	products, err := src.FetchByCategoryLabels(context.Background(), []string{"leather", "bags"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRESTSourceFetchErrors(t *testing.T) {
	t.Run("non-200 becomes DataSourceError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		src := NewRESTSource(srv.URL, "k", "")
		_, err := src.FetchAll(context.Background())
		require.Error(t, err)

		var dsErr *DataSourceError
		require.True(t, errors.As(err, &dsErr))
		assert.Equal(t, "fetch all", dsErr.Op)
	})

	t.Run("malformed body becomes DataSourceError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		src := NewRESTSource(srv.URL, "k", "")
		_, err := src.FetchAll(context.Background())

		var dsErr *DataSourceError
		require.True(t, errors.As(err, &dsErr))
	})

	t.Run("unreachable host becomes DataSourceError", func(t *testing.T) {
		src := NewRESTSource("http://127.0.0.1:1", "k", "")
		_, err := src.FetchAll(context.Background())

		var dsErr *DataSourceError
		require.True(t, errors.As(err, &dsErr))
	})
}

func TestRESTSourceIncrementPopularity(t *testing.T) {
	t.Run("posts the rpc payload", func(t *testing.T) {
		var gotPath, gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		src := NewRESTSource(srv.URL, "k", "")
		require.NoError(t, src.IncrementPopularity(context.Background(), "p42"))
		assert.Equal(t, "/rest/v1/rpc/increment_popularity", gotPath)
		assert.JSONEq(t, `{"product_id":"p42"}`, gotBody)
	})

	t.Run("failure surfaces as DataSourceError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		src := NewRESTSource(srv.URL, "k", "")
		err := src.IncrementPopularity(context.Background(), "p42")

		var dsErr *DataSourceError
		require.True(t, errors.As(err, &dsErr))
		assert.Equal(t, "increment popularity", dsErr.Op)
	})
}
