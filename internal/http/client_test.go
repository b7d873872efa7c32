package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/handiism/picsum-downloader/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewClient()
		assert.Equal(t, 30*time.Second, c.Timeout())
		assert.Equal(t, DefaultUserAgent, c.UserAgent())
	})

	t.Run("options", func(t *testing.T) {
		c := NewClient(WithTimeout(time.Second), WithUserAgent("test-agent"))
		assert.Equal(t, time.Second, c.Timeout())
		assert.Equal(t, "test-agent", c.UserAgent())
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("sends user agent and returns body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
			w.Header().Set("Picsum-ID", "42")
			w.Write([]byte("image-bytes"))
		}))
		defer server.Close()

		resp, err := NewClient().Get(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "42", resp.Header.Get("Picsum-ID"))
		assert.Equal(t, []byte("image-bytes"), resp.Body)
	})

	t.Run("non-success status is an API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewClient().Get(context.Background(), server.URL)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.KindAPI))
		assert.Equal(t, http.StatusServiceUnavailable, errs.StatusOf(err))
		assert.Contains(t, err.Error(), "HTTP 503")
	})

	t.Run("transport failure is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewClient().Get(context.Background(), url)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.KindNetwork))
	})

	t.Run("custom transport", func(t *testing.T) {
		boom := errors.New("boom")
		c := NewClient(WithTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, boom
		})))

		_, err := c.Get(context.Background(), "http://example.invalid/")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestClient_GetJSON(t *testing.T) {
	t.Run("decodes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"7","author":"Alejandro Escamilla"}`))
		}))
		defer server.Close()

		var v struct {
			ID     string `json:"id"`
			Author string `json:"author"`
		}
		require.NoError(t, NewClient().GetJSON(context.Background(), server.URL, &v))
		assert.Equal(t, "7", v.ID)
		assert.Equal(t, "Alejandro Escamilla", v.Author)
	})

	t.Run("malformed payload is an API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		var v map[string]any
		err := NewClient().GetJSON(context.Background(), server.URL, &v)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.KindAPI))
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
