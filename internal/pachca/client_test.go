package pachca

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetChatMemberIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/chats/42", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"member_ids":[1,2,3]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)
	ids, err := client.GetChatMemberIDs(context.Background(), 42)

	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)
}

func TestListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"first_name":"Анна","last_name":"Иванова","email":"anna@example.com","list_tags":["Студент"]},
			{"id":2,"first_name":"","last_name":"","email":"bob@example.com","custom_properties":[{"id":7,"name":"role","value":"Dev"}]}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)
	users, err := client.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Анна Иванова", users[0].DisplayName())
	require.Equal(t, []string{"Студент"}, users[0].ListTags)
	require.Equal(t, "bob@example.com", users[1].DisplayName())
	require.Equal(t, "Dev", users[1].CustomProperties[0].Value)
}

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/messages", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Message struct {
				EntityID int64  `json:"entity_id"`
				Content  string `json:"content"`
			} `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(42), req.Message.EntityID)
		require.Equal(t, "Сформированы группы:\n", req.Message.Content)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":100}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)
	require.NoError(t, client.SendMessage(context.Background(), 42, "Сформированы группы:\n"))
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":["chat not found"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)
	_, err := client.GetChatMemberIDs(context.Background(), 99)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "chats", apiErr.Endpoint)
	require.Contains(t, apiErr.Body, "chat not found")
}

func TestNetworkErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-token", time.Second)
	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
}
