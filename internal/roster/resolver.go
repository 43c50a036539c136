package roster

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/lo"

	"group-bot/internal/config"
	"group-bot/internal/models"
)

// Directory is the subset of the platform client needed for resolution.
type Directory interface {
	GetChatMemberIDs(ctx context.Context, chatID int64) ([]int64, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TagFilter decides whether a user carries the requested tag.
type TagFilter interface {
	Matches(user models.User, tag string) bool
}

// ListTagsFilter matches the tag against the user's tag list.
type ListTagsFilter struct{}

func (ListTagsFilter) Matches(user models.User, tag string) bool {
	return lo.Contains(user.ListTags, tag)
}

// CustomPropertiesFilter matches the tag against custom property values.
type CustomPropertiesFilter struct{}

func (CustomPropertiesFilter) Matches(user models.User, tag string) bool {
	return lo.SomeBy(user.CustomProperties, func(p models.CustomProperty) bool {
		return p.Value == tag
	})
}

// FilterForMode returns the filter implementation for a configured tag mode.
func FilterForMode(mode string) (TagFilter, error) {
	switch mode {
	case config.TagModeListTags:
		return ListTagsFilter{}, nil
	case config.TagModeCustomProperties:
		return CustomPropertiesFilter{}, nil
	default:
		return nil, fmt.Errorf("unknown tag mode %q", mode)
	}
}

// Resolver produces the filtered participant list of a chat.
type Resolver struct {
	directory Directory
	excluded  map[int64]struct{}
	tagFilter TagFilter
}

// NewResolver constructs a Resolver.
func NewResolver(directory Directory, excludedIDs []int64, tagFilter TagFilter) *Resolver {
	excluded := make(map[int64]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}
	return &Resolver{directory: directory, excluded: excluded, tagFilter: tagFilter}
}

// Resolve returns the chat's members present in the directory, minus the
// excluded ids, optionally narrowed to users carrying the tag. Order follows
// the directory.
func (r *Resolver) Resolve(ctx context.Context, chatID int64, tag string) ([]models.Participant, error) {
	memberIDs, err := r.directory.GetChatMemberIDs(ctx, chatID)
	if err != nil {
		return nil, err
	}

	users, err := r.directory.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	members := make(map[int64]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}

	eligible := lo.Filter(users, func(u models.User, _ int) bool {
		if _, ok := members[u.ID]; !ok {
			return false
		}
		_, excluded := r.excluded[u.ID]
		return !excluded
	})

	if tag != "" {
		log.Printf("filtering by tag %q", tag)
		eligible = lo.Filter(eligible, func(u models.User, _ int) bool {
			return r.tagFilter.Matches(u, tag)
		})
	}

	participants := lo.Map(eligible, func(u models.User, _ int) models.Participant {
		return models.Participant{ID: u.ID, Name: u.DisplayName()}
	})
	log.Printf("resolved participants chat_id=%d count=%d tag=%q", chatID, len(participants), tag)
	return participants, nil
}
