package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"group-bot/internal/command"
	"group-bot/internal/format"
	"group-bot/internal/grouping"
	"group-bot/internal/journal"
	"group-bot/internal/middleware"
	"group-bot/internal/models"
	"group-bot/internal/observability"
	"group-bot/internal/telemetry"
)

// Outcome labels shared by metrics, audit events and the journal.
const (
	OutcomeIgnored      = "ignored"
	OutcomeMalformed    = "malformed_command"
	OutcomeBadSize      = "invalid_group_size"
	OutcomeInsufficient = "insufficient_participants"
	OutcomeGrouped      = "grouped"
	OutcomeFailed       = "failed"
)

// Messenger posts messages into a chat.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// ParticipantResolver produces the eligible member list of a chat.
type ParticipantResolver interface {
	Resolve(ctx context.Context, chatID int64, tag string) ([]models.Participant, error)
}

// WebhookHandler orchestrates one webhook delivery end to end: parse the
// command, resolve participants, partition, reply.
type WebhookHandler struct {
	resolver  ParticipantResolver
	messenger Messenger
	journal   journal.Journal
	audit     *telemetry.AuditEmitter
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(resolver ParticipantResolver, messenger Messenger, j journal.Journal, audit *telemetry.AuditEmitter) *WebhookHandler {
	return &WebhookHandler{resolver: resolver, messenger: messenger, journal: j, audit: audit}
}

// Handle processes POST /webhook. The signature middleware has already
// verified and captured the raw body. Validation outcomes answer 200 with a
// chat message; upstream failures answer 500 to the webhook caller.
func (h *WebhookHandler) Handle(c *gin.Context) {
	start := time.Now()

	var event models.WebhookEvent
	if err := json.Unmarshal(middleware.RawBody(c), &event); err != nil {
		log.Printf("webhook body decode failed: %v", err)
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	log.Printf("webhook received chat_id=%d content=%q remote=%s",
		event.ChatID, event.Content, observability.IPFromRequest(c.Request))

	outcome, groupCount, err := h.process(c.Request.Context(), event)
	h.record(c, event, outcome, groupCount, start)

	if err != nil {
		log.Printf("webhook processing failed chat_id=%d outcome=%s: %v", event.ChatID, outcome, err)
		c.String(http.StatusInternalServerError, "Error")
		return
	}
	c.Status(http.StatusOK)
}

func (h *WebhookHandler) process(ctx context.Context, event models.WebhookEvent) (string, int, error) {
	cmd, err := command.Parse(event.Content)
	switch {
	case errors.Is(err, command.ErrNotCommand):
		log.Printf("not a command chat_id=%d", event.ChatID)
		return OutcomeIgnored, 0, nil
	case errors.Is(err, command.ErrMalformed):
		if sendErr := h.messenger.SendMessage(ctx, event.ChatID, format.UsageMessage); sendErr != nil {
			return OutcomeFailed, 0, sendErr
		}
		return OutcomeMalformed, 0, nil
	case errors.Is(err, command.ErrInvalidGroupSize):
		if sendErr := h.messenger.SendMessage(ctx, event.ChatID, format.GroupSizeMessage); sendErr != nil {
			return OutcomeFailed, 0, sendErr
		}
		return OutcomeBadSize, 0, nil
	case err != nil:
		return OutcomeFailed, 0, err
	}

	participants, err := h.resolver.Resolve(ctx, event.ChatID, cmd.Tag)
	if err != nil {
		return OutcomeFailed, 0, err
	}

	if len(participants) < cmd.GroupSize {
		text := format.InsufficientMessage(len(participants), cmd.GroupSize, cmd.Tag)
		if sendErr := h.messenger.SendMessage(ctx, event.ChatID, text); sendErr != nil {
			return OutcomeFailed, 0, sendErr
		}
		return OutcomeInsufficient, 0, nil
	}

	groups := grouping.Partition(participants, cmd.GroupSize)
	if sendErr := h.messenger.SendMessage(ctx, event.ChatID, format.Groups(groups, cmd.Tag)); sendErr != nil {
		return OutcomeFailed, len(groups), sendErr
	}
	return OutcomeGrouped, len(groups), nil
}

func (h *WebhookHandler) record(c *gin.Context, event models.WebhookEvent, outcome string, groupCount int, start time.Time) {
	observability.IncCommand(outcome)
	if outcome == OutcomeIgnored {
		return
	}

	requestID := requestIDFromContext(c)
	level := "INFO"
	if outcome == OutcomeFailed {
		level = "ERROR"
	}
	chatID := event.ChatID
	h.audit.Emit(c.Request.Context(), level, outcome, strings.TrimSpace(event.Content), requestID, &chatID)

	if h.journal == nil {
		return
	}
	if err := h.journal.Record(c.Request.Context(), journal.Delivery{
		RequestID:  requestID,
		ChatID:     event.ChatID,
		Command:    strings.TrimSpace(event.Content),
		Outcome:    outcome,
		GroupCount: groupCount,
		Elapsed:    time.Since(start),
	}); err != nil {
		log.Printf("journal record failed request_id=%s: %v", requestID, err)
	}
}
