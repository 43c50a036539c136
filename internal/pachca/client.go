package pachca

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"group-bot/internal/models"
	"group-bot/internal/observability"
)

// DefaultBaseURL is the platform's shared API root.
const DefaultBaseURL = "https://api.pachca.com/api/shared/v1"

// APIError carries the HTTP status and response body of a failed platform
// call, so the orchestration boundary can log them.
type APIError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pachca %s: status=%d body=%q", e.Endpoint, e.Status, e.Body)
}

// Client talks to the chat platform's REST API with a bearer token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient constructs a Client with a bounded per-call timeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
	}
}

type chatResponse struct {
	Data struct {
		MemberIDs []int64 `json:"member_ids"`
	} `json:"data"`
}

type usersResponse struct {
	Data []models.User `json:"data"`
}

type messageRequest struct {
	Message struct {
		EntityID int64  `json:"entity_id"`
		Content  string `json:"content"`
	} `json:"message"`
}

// GetChatMemberIDs fetches the member-id list of a chat.
func (c *Client) GetChatMemberIDs(ctx context.Context, chatID int64) ([]int64, error) {
	var resp chatResponse
	if err := c.doJSON(ctx, http.MethodGet, "chats", fmt.Sprintf("/chats/%d", chatID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.MemberIDs, nil
}

// ListUsers fetches the full user directory.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp usersResponse
	if err := c.doJSON(ctx, http.MethodGet, "users", "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SendMessage posts a message into the chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	log.Printf("sending message chat_id=%d chars=%d", chatID, len([]rune(text)))
	var req messageRequest
	req.Message.EntityID = chatID
	req.Message.Content = text
	return c.doJSON(ctx, http.MethodPost, "messages", "/messages", &req, nil)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint, path string, body, out any) error {
	ctx, span := otel.Tracer("group-bot/pachca").Start(ctx, "pachca."+endpoint,
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("pachca.endpoint", endpoint),
		))
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Printf("pachca request method=%s url=%s", method, c.baseURL+path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.IncPachcaCall(endpoint, "error")
		log.Printf("pachca request failed endpoint=%s message=%v", endpoint, err)
		return fmt.Errorf("pachca %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.IncPachcaCall(endpoint, "error")
		return fmt.Errorf("pachca %s: read body: %w", endpoint, err)
	}

	observability.IncPachcaCall(endpoint, strconv.Itoa(resp.StatusCode))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: string(raw)}
		log.Printf("pachca call failed endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, string(raw))
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("pachca %s: decode: %w", endpoint, err)
		}
	}
	return nil
}
