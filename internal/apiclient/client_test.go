package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api/", opts...)
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "ftp://host", "http://"} {
		_, err := New(raw)
		assert.Error(t, err, raw)
	}
}

func TestGetSendsQueryAndDefaultHeaders(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}, WithHeaders(map[string]string{"X-Store": "pc-concept"}))

	var out struct {
		Name string `json:"name"`
	}
	err := c.Get(context.Background(), "/products/", url.Values{"page": {"2"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, "/api/products/", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "pc-concept", got.Header.Get("X-Store"))
	assert.Empty(t, got.Header.Get("Content-Type"))
}

func TestPostEncodesJSONBody(t *testing.T) {
	var body map[string]any
	var contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created","review_id":9}`))
	})

	var out struct {
		ID int `json:"review_id"`
	}
	err := c.Post(context.Background(), "/reviews/", map[string]string{"user_alias": "Joshua T."}, &out)
	require.NoError(t, err)

	assert.Equal(t, 9, out.ID)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Joshua T.", body["user_alias"])
}

func TestBackendErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Rating must be a number between 1 and 5"}`))
	})

	err := c.Post(context.Background(), "/reviews/", map[string]int{"rating": 9}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Rating must be a number between 1 and 5", ErrorMessage(err, "fallback"))
	assert.False(t, IsNotFound(err))
}

func TestBackendErrorWithoutJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := c.Get(context.Background(), "/blogs/", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "fallback", ErrorMessage(err, "fallback"))
	assert.Contains(t, err.Error(), "500")
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Blog not found"}`))
	})

	err := c.Get(context.Background(), "/blogs/404", nil, nil)
	assert.True(t, IsNotFound(err))
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(base)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/products/", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "generic", ErrorMessage(err, "generic"))
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/products/", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPingIgnoresStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, c.Ping(context.Background()))
}
