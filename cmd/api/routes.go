package main

import (
	"net/http"

	"laurus/internal/shared/config"
	"laurus/internal/shared/log"
	"laurus/internal/shared/middleware"
)

// crudHandler is the five-verb surface every resource handler exposes.
type crudHandler interface {
	HandleCreate(w http.ResponseWriter, r *http.Request)
	HandleList(w http.ResponseWriter, r *http.Request)
	HandleGetByID(w http.ResponseWriter, r *http.Request)
	HandleUpdate(w http.ResponseWriter, r *http.Request)
	HandleDelete(w http.ResponseWriter, r *http.Request)
}

// SetupRoutes configures all HTTP routes and returns the final handler
// with middleware applied.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handleHealth)

	// Public routes
	mux.HandleFunc("POST /api/usuario/cadastro", deps.UserHandler.HandleCreate)
	mux.HandleFunc("POST /api/auth", deps.AuthHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/renovarToken", deps.AuthHandler.HandleRenewToken)

	// Protected routes
	protect := middleware.Auth(deps.Tokens, deps.UserRepo, deps.Bundle, logger.WithComponent("auth"))

	mux.Handle("POST /api/auth/logout/{id}", protect(http.HandlerFunc(deps.AuthHandler.HandleLogout)))

	mux.Handle("GET /api/usuario", protect(http.HandlerFunc(deps.UserHandler.HandleList)))
	mux.Handle("GET /api/usuario/{id}", protect(http.HandlerFunc(deps.UserHandler.HandleGetByID)))
	mux.Handle("GET /api/usuario/nome/{nome}", protect(http.HandlerFunc(deps.UserHandler.HandleSearchByName)))
	mux.Handle("GET /api/usuario/email/{email}", protect(http.HandlerFunc(deps.UserHandler.HandleSearchByEmail)))
	mux.Handle("PUT /api/usuario/{id}", protect(http.HandlerFunc(deps.UserHandler.HandleUpdate)))
	mux.Handle("DELETE /api/usuario/{id}", protect(http.HandlerFunc(deps.UserHandler.HandleDelete)))

	mountCRUD(mux, protect, "/api/conta", deps.AccountHandler)
	mountCRUD(mux, protect, "/api/cartaoCredito", deps.CreditCardHandler)
	mountCRUD(mux, protect, "/api/despesaCategoria", deps.DespesaCategoriaHandler)
	mountCRUD(mux, protect, "/api/receitaCategoria", deps.ReceitaCategoriaHandler)
	mountCRUD(mux, protect, "/api/despesaSubcategoria", deps.DespesaSubcategoriaHandler)
	mountCRUD(mux, protect, "/api/receitaSubcategoria", deps.ReceitaSubcategoriaHandler)
	mountCRUD(mux, protect, "/api/tag", deps.TagHandler)
	mountCRUD(mux, protect, "/api/despesaConta", deps.DespesaContaHandler)
	mountCRUD(mux, protect, "/api/despesaCartaoCredito", deps.DespesaCartaoCreditoHandler)
	mountCRUD(mux, protect, "/api/receitaConta", deps.ReceitaContaHandler)
	mountCRUD(mux, protect, "/api/receitaCartaoCredito", deps.ReceitaCartaoCreditoHandler)

	// Global middleware
	handler := middleware.Localizer(deps.Bundle)(mux)
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(handler)
	}
	handler = middleware.Logging(logger.WithComponent("http"))(middleware.CORS(handler))

	// Security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		logger.Info("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}

func mountCRUD(mux *http.ServeMux, protect func(http.Handler) http.Handler, path string, h crudHandler) {
	mux.Handle("POST "+path, protect(http.HandlerFunc(h.HandleCreate)))
	mux.Handle("GET "+path, protect(http.HandlerFunc(h.HandleList)))
	mux.Handle("GET "+path+"/{id}", protect(http.HandlerFunc(h.HandleGetByID)))
	mux.Handle("PUT "+path+"/{id}", protect(http.HandlerFunc(h.HandleUpdate)))
	mux.Handle("DELETE "+path+"/{id}", protect(http.HandlerFunc(h.HandleDelete)))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
