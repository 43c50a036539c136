package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"group-bot/internal/grouping"
)

func TestGroupsWithoutTag(t *testing.T) {
	groups := []grouping.Group{
		{{ID: 1, Name: "Анна Иванова"}, {ID: 2, Name: "bob@example.com"}},
		{{ID: 3, Name: "User_3"}},
	}

	want := "Сформированы группы:\n" +
		"\nГруппа 1:\n" +
		"1. Анна Иванова\n" +
		"2. bob@example.com\n" +
		"\nГруппа 2:\n" +
		"1. User_3\n"
	require.Equal(t, want, Groups(groups, ""))
}

func TestGroupsWithTag(t *testing.T) {
	groups := []grouping.Group{{{ID: 1, Name: "Анна"}}}

	want := "Сформированы группы для тега Студент:\n" +
		"\nГруппа 1:\n" +
		"1. Анна\n"
	require.Equal(t, want, Groups(groups, "Студент"))
}

func TestInsufficientMessage(t *testing.T) {
	require.Equal(t,
		"Недостаточно участников (1) для групп по 5",
		InsufficientMessage(1, 5, ""))
	require.Equal(t,
		"Недостаточно участников (2) для групп по 3 с тегом Dev",
		InsufficientMessage(2, 3, "Dev"))
}
