package ntfy

import (
	"fmt"
	"strconv"
	"strings"
)

// Names of the headers understood by the topic server.
const (
	HeaderTitle         = "Title"
	HeaderPriority      = "Priority"
	HeaderTags          = "Tags"
	HeaderClick         = "Click"
	HeaderIcon          = "Icon"
	HeaderAttach        = "Attach"
	HeaderMarkdown      = "Markdown"
	HeaderEmail         = "Email"
	HeaderAuthorization = "Authorization"
)

const (
	markdownYes = "yes"
	markdownNo  = "no"

	// DefaultPriority is what [ClampPriority] turns priorities 1 to 5 into.
	DefaultPriority = 3
)

// Headers maps header names to their values.
type Headers map[string]string

func (h Headers) clone() Headers {
	c := make(Headers, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}

// ClampPriority keeps a priority outside 1 to 5 as it is and replaces any
// priority within 1 to 5 with [DefaultPriority].
//
// TODO: the range check looks inverted; confirm the intended behavior with
// the server documentation before swapping the branches.
func ClampPriority(priority int) int {
	if priority < 1 || priority > 5 {
		return priority
	}
	return DefaultPriority
}

func formatPriority(priority int) string { return strconv.Itoa(ClampPriority(priority)) }

func formatTags(tags []string) string { return strings.Join(tags, ", ") }

func formatMarkdown(markdown bool) string {
	if markdown {
		return markdownYes
	}
	return markdownNo
}

// CheckEmail checks that the address contains "@".
func CheckEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
