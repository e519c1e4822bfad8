package http

import (
	"encoding/json"
	"net/http"

	"laurus/internal/shared/i18n"
	"laurus/internal/shared/log"
	"laurus/internal/shared/middleware"
)

// envelope is the single response contract of the API. Every handler
// funnels through the Responder so no ad-hoc JSON body ever leaves.
type envelope struct {
	Message    string `json:"message"`
	Dados      any    `json:"dados,omitempty"`
	Resultados any    `json:"resultados,omitempty"`
	Total      *int   `json:"total,omitempty"`
}

type Responder struct {
	bundle *i18n.Bundle
	logger *log.Logger
}

func NewResponder(bundle *i18n.Bundle, logger *log.Logger) *Responder {
	return &Responder{bundle: bundle, logger: logger}
}

// Message writes {message} with the key resolved for the request locale.
func (re *Responder) Message(w http.ResponseWriter, r *http.Request, status int, key string) {
	re.write(w, r, status, envelope{Message: re.resolve(r, key, nil)})
}

// Data writes {message, dados}.
func (re *Responder) Data(w http.ResponseWriter, r *http.Request, status int, key string, dados any) {
	re.write(w, r, status, envelope{Message: re.resolve(r, key, nil), Dados: dados})
}

// DataWith writes {message, dados} interpolating {{placeholders}} in the
// resolved message.
func (re *Responder) DataWith(w http.ResponseWriter, r *http.Request, status int, key string, data map[string]any, dados any) {
	re.write(w, r, status, envelope{Message: re.resolve(r, key, data), Dados: dados})
}

// List writes {message, resultados, total}. An empty result set still
// serializes as [] with total 0.
func (re *Responder) List(w http.ResponseWriter, r *http.Request, key string, resultados any, total int) {
	re.write(w, r, http.StatusOK, envelope{
		Message:    re.resolve(r, key, nil),
		Resultados: resultados,
		Total:      &total,
	})
}

// ValidationError maps field-level validation failures to 400 and carries
// the offending detail in the message.
func (re *Responder) ValidationError(w http.ResponseWriter, r *http.Request, err error) {
	re.logger.InfoContext(r.Context(), "validation failed", "path", r.URL.Path, "error", err)
	re.write(w, r, http.StatusBadRequest, envelope{
		Message: re.resolve(r, "erro.validacaoDados", map[string]any{"detalhes": err.Error()}),
	})
}

// BadRequest covers undecodable bodies.
func (re *Responder) BadRequest(w http.ResponseWriter, r *http.Request) {
	re.Message(w, r, http.StatusBadRequest, "erro.requisicaoInvalida")
}

// Internal logs the unexpected error and hides it behind a generic 500.
func (re *Responder) Internal(w http.ResponseWriter, r *http.Request, err error) {
	re.logger.ErrorContext(r.Context(), "internal error", "path", r.URL.Path, "error", err)
	re.Message(w, r, http.StatusInternalServerError, "erro.internoServidor")
}

func (re *Responder) resolve(r *http.Request, key string, data map[string]any) string {
	return re.bundle.Resolve(middleware.Locale(r.Context()), key, data)
}

func (re *Responder) write(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		re.logger.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}
