// ABOUTME: Tests for the allow-listed HLS proxy
// ABOUTME: Covers missing URL, domain rejection, upstream errors and header forwarding

package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyMissingURL(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeFetcher{})

	rec := doRequest(s, http.MethodGet, "/proxy/hls", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing URL", rec.Body.String())
}

func TestProxyInvalidURL(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeFetcher{})

	rec := doRequest(s, http.MethodGet, "/proxy/hls?url="+url.QueryEscape("::not a url::"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProxyDisallowedDomain(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeFetcher{})

	rec := doRequest(s, http.MethodGet, "/proxy/hls?url="+url.QueryEscape("https://evil.example.com/stream.m3u8"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Domain not allowed", rec.Body.String())
}

func TestProxyLookalikeDomainRejected(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeFetcher{})

	// Suffix matching must not accept registrable-domain lookalikes.
	rec := doRequest(s, http.MethodGet, "/proxy/hls?url="+url.QueryEscape("https://evilyoutube.com/v"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProxySuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		w.Header().Set("ETag", `"abc"`)
		w.Write([]byte("#EXTM3U\n"))
	}))
	defer upstream.Close()

	cfg := testConfig()
	u, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	cfg.Proxy.AllowedDomains = []string{u.Hostname()}

	s := newTestServer(t, cfg, &fakeFetcher{})

	rec := doRequest(s, http.MethodGet, "/proxy/hls?url="+url.QueryEscape(upstream.URL+"/stream.m3u8"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#EXTM3U\n", rec.Body.String())
	assert.Equal(t, "application/vnd.apple.mpegurl", rec.Header().Get("Content-Type"))
	assert.Equal(t, `"abc"`, rec.Header().Get("ETag"))
}

func TestProxyUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	cfg := testConfig()
	u, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	cfg.Proxy.AllowedDomains = []string{u.Hostname()}

	s := newTestServer(t, cfg, &fakeFetcher{})

	rec := doRequest(s, http.MethodGet, "/proxy/hls?url="+url.QueryEscape(upstream.URL), "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Upstream request failed", rec.Body.String())
}

func TestProxyUnreachableUpstream(t *testing.T) {
	cfg := testConfig()
	cfg.Proxy.AllowedDomains = []string{"127.0.0.1"}

	s := newTestServer(t, cfg, &fakeFetcher{})

	// Port 1 should refuse connections.
	rec := doRequest(s, http.MethodGet, "/proxy/hls?url="+url.QueryEscape("http://127.0.0.1:1/stream"), "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Failed to load resource", rec.Body.String())
}

func TestDomainAllowed(t *testing.T) {
	domains := []string{"youtube.com", "googlevideo.com"}

	tests := []struct {
		host     string
		expected bool
	}{
		{"youtube.com", true},
		{"www.youtube.com", true},
		{"r1.sn-abc.googlevideo.com", true},
		{"evilyoutube.com", false},
		{"youtube.com.evil.net", false},
		{"example.com", false},
	}

	for _, tt := range tests {
		if got := domainAllowed(tt.host, domains); got != tt.expected {
			t.Errorf("domainAllowed(%q) = %v, want %v", tt.host, got, tt.expected)
		}
	}
}
