package pp

import "strings"

// None stands in for an empty list or an unset value.
const None = "(none)"

// Join lists items separated by commas, as ntfy tags are shown.
func Join(items []string) string {
	if len(items) == 0 {
		return None
	}
	return strings.Join(items, ", ")
}

func joinWith(conj string, items []string) string {
	n := len(items)
	switch n {
	case 0:
		return None
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	return strings.Join(items[:n-1], ", ") + ", " + conj + " " + items[n-1]
}

// JoinAnd lists items in English with "and", e.g. "A, B, and C".
func JoinAnd(items []string) string { return joinWith("and", items) }

// JoinOr lists items in English with "or", e.g. "A, B, or C".
func JoinOr(items []string) string { return joinWith("or", items) }
