package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateProviderClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "result": "success",
            "base_code": "USD",
            "rates": {"USD": 1.0, "EUR": 0.93, "JPY": 147.5}
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewRateProviderClient(srv.Client(), srv.URL+"/v6/latest")

	rates, err := c.FetchRates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 3)
	require.InDelta(t, 0.93, rates["EUR"], 1e-9)
	require.InDelta(t, 147.5, rates["JPY"], 1e-9)
}

func TestRateProviderClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewRateProviderClient(srv.Client(), srv.URL+"/v6/latest")

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestRateProviderClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewRateProviderClient(srv.Client(), srv.URL+"/v6/latest")

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode rate provider response")
}

func TestRateProviderClient_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "success", "rates": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewRateProviderClient(srv.Client(), srv.URL+"/v6/latest")

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no rates")
}

func TestRateProviderClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := NewRateProviderClient(srv.Client(), srv.URL+"/v6/latest")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchRates(ctx)
	require.Error(t, err)
}
