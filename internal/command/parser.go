package command

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNotCommand marks text that does not address the bot at all.
	ErrNotCommand = errors.New("not a group command")
	// ErrMalformed marks /group text that does not fit the expected shape.
	ErrMalformed = errors.New("malformed group command")
	// ErrInvalidGroupSize marks a parsed size below 1.
	ErrInvalidGroupSize = errors.New("group size must be positive")
)

// Command is a parsed /group request.
type Command struct {
	GroupSize int
	Tag       string
}

// Unanchored: trailing text after a well-formed command is ignored.
var groupPattern = regexp.MustCompile(`/group\s+(\d+)(?:\s+tag:([\p{L}\d_-]+))?`)

// Parse extracts a Command from raw message text. Text not starting with
// /group is not a command at all and yields ErrNotCommand.
func Parse(text string) (Command, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/group") {
		return Command{}, ErrNotCommand
	}

	match := groupPattern.FindStringSubmatch(text)
	if match == nil {
		return Command{}, ErrMalformed
	}

	size, err := strconv.Atoi(match[1])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Command{}, ErrMalformed
	}
	if size < 1 {
		return Command{}, ErrInvalidGroupSize
	}
	return Command{GroupSize: size, Tag: match[2]}, nil
}
