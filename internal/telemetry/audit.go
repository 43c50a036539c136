package telemetry

import (
	"context"
	"log"
	"time"
)

// Publisher delivers audit events to the broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// AuditEmitter turns command outcomes into audit events.
type AuditEmitter struct {
	publisher   Publisher
	routingKey  string
	service     string
	environment string
}

// AuditEnvelope is the wire format of one audit event.
type AuditEnvelope struct {
	SchemaVersion int          `json:"schema_version"`
	EventType     string       `json:"event_type"`
	OccurredAt    string       `json:"occurred_at"`
	Service       string       `json:"service"`
	Environment   string       `json:"environment"`
	RequestID     string       `json:"request_id"`
	ChatID        *int64       `json:"chat_id,omitempty"`
	Payload       AuditPayload `json:"payload"`
}

// AuditPayload describes what happened to one webhook delivery.
type AuditPayload struct {
	Level   string `json:"level"`
	Outcome string `json:"outcome"`
	Text    string `json:"text"`
}

// NewAuditEmitter constructs an AuditEmitter.
func NewAuditEmitter(publisher Publisher, routingKey, service, environment string) *AuditEmitter {
	return &AuditEmitter{
		publisher:   publisher,
		routingKey:  routingKey,
		service:     service,
		environment: environment,
	}
}

// Emit publishes one audit event. Safe to call on a nil emitter.
func (e *AuditEmitter) Emit(ctx context.Context, level, outcome, text, requestID string, chatID *int64) {
	if e == nil || e.publisher == nil {
		return
	}

	envelope := AuditEnvelope{
		SchemaVersion: 1,
		EventType:     "audit_log",
		OccurredAt:    time.Now().UTC().Format(time.RFC3339Nano),
		Service:       e.service,
		Environment:   e.environment,
		RequestID:     requestID,
		ChatID:        chatID,
		Payload: AuditPayload{
			Level:   level,
			Outcome: outcome,
			Text:    text,
		},
	}

	if err := e.publisher.Publish(ctx, e.routingKey, envelope); err != nil {
		log.Printf("audit publish failed request_id=%s: %v", requestID, err)
	}
}
