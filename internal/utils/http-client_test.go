package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMnistHTTPClientSetsHeaders(t *testing.T) {
	var seen http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewMnistHTTPClient(HTTPClientConfig{
		UserAgent: "custom-agent",
		Headers:   map[string]string{"X-Token": "abc"},
	})
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "custom-agent", seen.Get("User-Agent"))
	require.Equal(t, "abc", seen.Get("X-Token"))
}

func TestMnistHTTPClientDefaults(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.UserAgent()
	}))
	defer server.Close()

	client := NewMnistHTTPClient(HTTPClientConfig{})
	require.Equal(t, DefaultTimeout, client.client.Timeout)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, ToolUserAgent, agent)
}

func TestParseHeaderArgs(t *testing.T) {
	headers := ParseHeaderArgs([]string{"Authorization: Basic dXNlcjpwYXNz", "broken", " X-A :b:c"})
	require.Equal(t, map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
		"X-A":           "b:c",
	}, headers)
}

func TestSplitProxyAuth(t *testing.T) {
	cfg := HTTPClientConfig{ProxyURL: "http://alice:pw@proxy.local:3128"}
	SplitProxyAuth(&cfg)
	require.Equal(t, "http://proxy.local:3128", cfg.ProxyURL)
	require.Equal(t, "alice", cfg.ProxyUsername)
	require.Equal(t, "pw", cfg.ProxyPassword)

	explicit := HTTPClientConfig{ProxyURL: "http://alice:pw@proxy.local:3128", ProxyUsername: "bob"}
	SplitProxyAuth(&explicit)
	require.Equal(t, "http://alice:pw@proxy.local:3128", explicit.ProxyURL)
	require.Equal(t, "bob", explicit.ProxyUsername)
}
