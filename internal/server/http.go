package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds graceful HTTP shutdown after a signal.
const shutdownTimeout = 10 * time.Second

// HTTP wraps the MCP server in a web surface: service info at /,
// /health-check, Prometheus /metrics and the streamable MCP transport
// mounted at /mcp-server.
type HTTP struct {
	mcp  *MCP
	port int
	log  *logrus.Entry
}

// NewHTTP builds the HTTP wrapper around an MCP server.
func NewHTTP(mcp *MCP, port int, log *logrus.Entry) *HTTP {
	return &HTTP{mcp: mcp, port: port, log: log}
}

// Handler assembles the full request mux with middleware applied.
func (h *HTTP) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/health-check", h.handleHealthCheck)
	mux.Handle("/metrics", promhttp.Handler())

	streamable := server.NewStreamableHTTPServer(h.mcp.Server(),
		server.WithEndpointPath("/mcp-server"),
	)
	mux.Handle("/mcp-server", streamable)

	return corsMiddleware(logMiddleware(h.log, recoverMiddleware(h.log, mux)))
}

// ListenAndServe runs the HTTP server until ctx is done or SIGINT or
// SIGTERM arrives, then shuts down gracefully.
func (h *HTTP) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", h.port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.log.Infof("Starting MCP server on http://%s/mcp-server", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	h.log.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (h *HTTP) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "Highfeature Sequential Thinking MCP Service",
		"version": ServerVersion,
		"status":  "running",
	})
}

func (h *HTTP) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
