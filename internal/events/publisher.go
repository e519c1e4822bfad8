package events

import (
	"context"
	"time"
)

// Event names published by the API.
const (
	TransactionCreated = "transacao.criada"
	TransactionDeleted = "transacao.excluida"
)

type Event struct {
	Name       string    `json:"evento"`
	OccurredAt time.Time `json:"ocorridoEm"`
	Dados      any       `json:"dados,omitempty"`
}

func New(name string, dados any) Event {
	return Event{Name: name, OccurredAt: time.Now(), Dados: dados}
}

// Publisher pushes domain events to the message broker. Publishing is
// best-effort: handlers log failures but never fail the request over them.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured and
// in tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }
func (NoopPublisher) Close() error                                   { return nil }
