package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/labstack/echo/v4"
)

// ProxyHandler forwards classified requests, trust headers included,
// to the upstream storefront/admin application.
type ProxyHandler struct {
	proxy  *httputil.ReverseProxy
	logger *slog.Logger
}

// NewProxyHandler creates a reverse proxy to the upstream application
func NewProxyHandler(upstreamURL string, logger *slog.Logger) (*ProxyHandler, error) {
	target, err := url.Parse(upstreamURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL %q: %w", upstreamURL, err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxyLogger := logger.With("component", "proxy_handler")
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		proxyLogger.Error("upstream request failed", "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusBadGateway)
	}

	return &ProxyHandler{
		proxy:  proxy,
		logger: proxyLogger,
	}, nil
}

// Forward hands the request to the upstream application.
func (h *ProxyHandler) Forward(c echo.Context) error {
	h.proxy.ServeHTTP(c.Response(), c.Request())
	return nil
}
