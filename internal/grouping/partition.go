package grouping

import (
	"math/rand"

	"github.com/samber/lo"

	"group-bot/internal/models"
)

// Group is one chunk of the shuffled participant list.
type Group []models.Participant

// Partition shuffles participants uniformly (Fisher–Yates) and slices the
// result into consecutive groups of groupSize; the last group holds the
// remainder. The input slice is left untouched. The caller guarantees
// groupSize >= 1 and len(participants) >= groupSize.
func Partition(participants []models.Participant, groupSize int) []Group {
	shuffled := make([]models.Participant, len(participants))
	copy(shuffled, participants)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return lo.Map(lo.Chunk(shuffled, groupSize), func(chunk []models.Participant, _ int) Group {
		return Group(chunk)
	})
}
