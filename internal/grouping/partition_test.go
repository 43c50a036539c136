package grouping

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"group-bot/internal/models"
)

func makeParticipants(n int) []models.Participant {
	participants := make([]models.Participant, 0, n)
	for i := 1; i <= n; i++ {
		participants = append(participants, models.Participant{ID: int64(i), Name: fmt.Sprintf("User_%d", i)})
	}
	return participants
}

func TestPartitionSizes(t *testing.T) {
	groups := Partition(makeParticipants(7), 3)

	require.Len(t, groups, 3)
	require.Len(t, groups[0], 3)
	require.Len(t, groups[1], 3)
	require.Len(t, groups[2], 1)
}

func TestPartitionExactDivision(t *testing.T) {
	groups := Partition(makeParticipants(6), 2)

	require.Len(t, groups, 3)
	for _, group := range groups {
		require.Len(t, group, 2)
	}
}

func TestPartitionIsPermutation(t *testing.T) {
	participants := makeParticipants(10)
	groups := Partition(participants, 4)

	seen := map[int64]int{}
	total := 0
	for _, group := range groups {
		for _, p := range group {
			seen[p.ID]++
			total++
		}
	}

	require.Equal(t, len(participants), total, "no participant dropped or duplicated")
	for _, p := range participants {
		require.Equal(t, 1, seen[p.ID], "participant %d must appear exactly once", p.ID)
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	participants := makeParticipants(20)
	original := make([]models.Participant, len(participants))
	copy(original, participants)

	Partition(participants, 3)

	require.Equal(t, original, participants)
}

func TestPartitionSingleParticipant(t *testing.T) {
	groups := Partition(makeParticipants(1), 1)

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
}
