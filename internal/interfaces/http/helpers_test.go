package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"laurus/internal/shared/i18n"
	"laurus/internal/shared/log"
)

func newTestResponder() *Responder {
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	return NewResponder(i18n.NewBundle(), logger)
}

// testEnvelope mirrors the response contract for assertions. Total is a
// pointer so tests can tell "absent" from "zero".
type testEnvelope struct {
	Message    string          `json:"message"`
	Dados      json.RawMessage `json:"dados"`
	Resultados json.RawMessage `json:"resultados"`
	Total      *int            `json:"total"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return env
}
