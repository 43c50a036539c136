package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"group-bot/internal/journal"
	"group-bot/internal/models"
	"group-bot/internal/roster"
	"group-bot/internal/telemetry"
)

type ResolverMock struct {
	mock.Mock
}

func (m *ResolverMock) Resolve(ctx context.Context, chatID int64, tag string) ([]models.Participant, error) {
	args := m.Called(ctx, chatID, tag)
	var participants []models.Participant
	if val := args.Get(0); val != nil {
		participants = val.([]models.Participant)
	}
	return participants, args.Error(1)
}

type MessengerMock struct {
	mock.Mock
}

func (m *MessengerMock) SendMessage(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

type DirectoryMock struct {
	mock.Mock
}

func (m *DirectoryMock) GetChatMemberIDs(ctx context.Context, chatID int64) ([]int64, error) {
	args := m.Called(ctx, chatID)
	var ids []int64
	if val := args.Get(0); val != nil {
		ids = val.([]int64)
	}
	return ids, args.Error(1)
}

func (m *DirectoryMock) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

type JournalMock struct {
	mock.Mock
}

func (m *JournalMock) Record(ctx context.Context, d journal.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *JournalMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, event any) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

func (m *PublisherMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ roster.Directory = (*DirectoryMock)(nil)
var _ journal.Journal = (*JournalMock)(nil)
var _ telemetry.Publisher = (*PublisherMock)(nil)
