package models

import (
	"fmt"
	"strings"
)

// CustomProperty is one entry of a user's custom-properties collection.
type CustomProperty struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is an entry of the platform's user directory.
type User struct {
	ID               int64            `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	ListTags         []string         `json:"list_tags"`
	CustomProperties []CustomProperty `json:"custom_properties"`
}

// DisplayName is the name shown in group listings: full name, falling back
// to the email, falling back to a synthetic User_<id>.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return fmt.Sprintf("User_%d", u.ID)
}

// Participant is a chat member eligible for grouping. Built fresh per
// request, never persisted.
type Participant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
