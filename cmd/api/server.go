package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"laurus/internal/shared/config"
	"laurus/internal/shared/log"
	"laurus/internal/shared/middleware"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Handler      http.Handler
	Addr         string
	TLSEnabled   bool
	CertPath     string
	KeyPath      string
	RedirectHTTP bool
	AllowedHosts []string
}

// NewServerConfigFromConfig creates ServerConfig from application config.
func NewServerConfigFromConfig(handler http.Handler, cfg *config.Config) ServerConfig {
	return ServerConfig{
		Handler:      handler,
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		TLSEnabled:   cfg.TLS.Enabled,
		CertPath:     cfg.TLS.CertPath,
		KeyPath:      cfg.TLS.KeyPath,
		RedirectHTTP: cfg.TLS.RedirectHTTP,
		AllowedHosts: cfg.Server.AllowedHosts,
	}
}

// StartServers creates and starts the main server and optional HTTP
// redirect server. The redirect server is nil unless TLS redirect is on.
func StartServers(scfg ServerConfig, logger *log.Logger) (*http.Server, *http.Server) {
	srv := &http.Server{
		Addr:         scfg.Addr,
		Handler:      scfg.Handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var redirectSrv *http.Server

	if scfg.TLSEnabled && scfg.RedirectHTTP {
		redirectSrv = createRedirectServer(scfg.AllowedHosts)
		go func() {
			logger.Info("HTTP redirect server starting", "addr", ":80")
			if err := redirectSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP redirect server error", "error", err)
			}
		}()
	}

	go func() {
		if scfg.TLSEnabled {
			logger.Info("HTTPS server starting", "addr", scfg.Addr)
			if err := srv.ListenAndServeTLS(scfg.CertPath, scfg.KeyPath); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTPS server error", "error", err)
			}
		} else {
			logger.Info("HTTP server starting", "addr", scfg.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server error", "error", err)
			}
		}
	}()

	return srv, redirectSrv
}

// GracefulShutdown drains both servers within the timeout.
func GracefulShutdown(srv, redirectSrv *http.Server, logger *log.Logger, timeout time.Duration) {
	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if redirectSrv != nil {
		if err := redirectSrv.Shutdown(ctx); err != nil {
			logger.Error("error shutting down HTTP redirect server", "error", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error shutting down main server", "error", err)
	}

	logger.Info("server stopped")
}

// createRedirectServer answers every HTTP request with a redirect to the
// HTTPS equivalent, refusing hosts outside the allow list.
func createRedirectServer(allowedHosts []string) *http.Server {
	redirectHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := r.Header.Get("X-Forwarded-Host")
		if host == "" {
			host = r.Host
		}

		if !middleware.IsHostAllowed(host, allowedHosts) {
			http.Error(w, "Invalid host", http.StatusBadRequest)
			return
		}

		canonicalHost := host
		if idx := strings.Index(host, ":"); idx != -1 {
			canonicalHost = host[:idx]
		}

		http.Redirect(w, r, "https://"+canonicalHost+r.RequestURI, http.StatusMovedPermanently)
	})

	return &http.Server{
		Addr:         ":80",
		Handler:      redirectHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
