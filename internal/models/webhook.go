package models

// WebhookEvent is the slice of the inbound webhook payload the bot consumes.
type WebhookEvent struct {
	ChatID  int64  `json:"chat_id"`
	Content string `json:"content"`
}
