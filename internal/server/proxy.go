// ABOUTME: Allow-listed HLS byte proxy for embedded video streams
// ABOUTME: Forwards only safe headers and maps upstream failures to 502

package server

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// safeHeaders are the only upstream response headers forwarded to clients.
var safeHeaders = []string{"Content-Type", "Content-Length", "Last-Modified", "ETag"}

func (s *Server) handleHLSProxy(c echo.Context) error {
	target := c.QueryParam("url")
	if target == "" {
		return c.String(http.StatusBadRequest, "Missing URL")
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Hostname() == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return c.String(http.StatusBadRequest, "Invalid URL")
	}

	if !domainAllowed(parsed.Hostname(), s.cfg.Proxy.AllowedDomains) {
		return c.String(http.StatusForbidden, "Domain not allowed")
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, target, nil)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid URL")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NewsWave Proxy)")
	if referer := c.Request().Referer(); referer != "" {
		req.Header.Set("Referer", referer)
	}
	if origin := c.Request().Header.Get(echo.HeaderOrigin); origin != "" {
		req.Header.Set("Origin", origin)
	}

	resp, err := s.proxyClient.Do(req)
	if err != nil {
		s.logger.Warn("proxy upstream failed", "url", target, "error", err)
		return c.String(http.StatusBadGateway, "Failed to load resource")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.String(http.StatusBadGateway, "Upstream request failed")
	}

	for _, h := range safeHeaders {
		if v := resp.Header.Get(h); v != "" {
			c.Response().Header().Set(h, v)
		}
	}
	c.Response().WriteHeader(http.StatusOK)
	_, err = io.Copy(c.Response(), resp.Body)
	return err
}

// domainAllowed reports whether host equals an allowed domain or is one of
// its subdomains. Substring matching is deliberately avoided so
// "evilyoutube.com" does not pass.
func domainAllowed(host string, domains []string) bool {
	host = strings.ToLower(host)
	for _, domain := range domains {
		domain = strings.ToLower(domain)
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
