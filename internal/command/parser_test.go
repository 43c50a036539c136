package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{"size only", "/group 3", Command{GroupSize: 3}},
		{"size and tag", "/group 3 tag:Student", Command{GroupSize: 3, Tag: "Student"}},
		{"cyrillic tag", "/group 2 tag:Студент", Command{GroupSize: 2, Tag: "Студент"}},
		{"tag with dash and underscore", "/group 4 tag:go_devs-2024", Command{GroupSize: 4, Tag: "go_devs-2024"}},
		{"surrounding whitespace", "  /group 5  ", Command{GroupSize: 5}},
		{"trailing text ignored", "/group 3 please", Command{GroupSize: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"plain message", "hello there", ErrNotCommand},
		{"empty", "", ErrNotCommand},
		{"no size", "/group", ErrMalformed},
		{"word instead of size", "/group abc", ErrMalformed},
		{"prefix but broken", "/groups 3", ErrMalformed},
		{"zero size", "/group 0", ErrInvalidGroupSize},
		{"zero size with tag", "/group 0 tag:Student", ErrInvalidGroupSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
