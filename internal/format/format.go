package format

import (
	"fmt"
	"strings"

	"group-bot/internal/grouping"
)

// User-facing message texts. The bot speaks Russian.
const (
	UsageMessage     = "Укажите размер групп, например: /group 3 или /group 3 tag:Студент"
	GroupSizeMessage = "Размер группы должен быть больше 0"
)

// InsufficientMessage reports that too few participants matched the filter
// for the requested group size.
func InsufficientMessage(count, groupSize int, tag string) string {
	msg := fmt.Sprintf("Недостаточно участников (%d) для групп по %d", count, groupSize)
	if tag != "" {
		msg += fmt.Sprintf(" с тегом %s", tag)
	}
	return msg
}

// Groups renders computed groups as chat message text: a header noting the
// tag filter when present, then a 1-indexed listing per group.
func Groups(groups []grouping.Group, tag string) string {
	var b strings.Builder
	if tag != "" {
		fmt.Fprintf(&b, "Сформированы группы для тега %s:\n", tag)
	} else {
		b.WriteString("Сформированы группы:\n")
	}

	for i, group := range groups {
		fmt.Fprintf(&b, "\nГруппа %d:\n", i+1)
		for j, participant := range group {
			fmt.Fprintf(&b, "%d. %s\n", j+1, participant.Name)
		}
	}
	return b.String()
}
