package httpserver

import (
	"net/http"
	"time"

	"agriai/internal/platform/config"
)

// New builds an HTTP server from the server configuration. The write
// timeout must leave room for a full-size image upload.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
