package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with sane defaults for this project. The write
// timeout leaves room for the per-request evaluation timeout.
func New(addr string, handler http.Handler, evaluateTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      evaluateTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
