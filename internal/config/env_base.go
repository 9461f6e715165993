package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/notify-you/notify-you/internal/pp"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// GetenvAsList reads an environment variable, split it by sep, and trim the space.
// Empty items are dropped.
func GetenvAsList(key string, sep string) []string {
	rawVals := strings.Split(os.Getenv(key), sep)
	vals := make([]string, 0, len(rawVals))
	for _, v := range rawVals {
		v = strings.TrimSpace(v)
		if len(v) > 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

// ReadString reads an environment variable as a plain string.
// The default value is only mentioned when it is not empty.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		if *field != "" {
			ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		}
		return true
	}

	*field = val
	return true
}

// ReadBool reads an environment variable as a boolean value.
func ReadBool(ppfmt pp.PP, key string, field *bool) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%t", key, *field)
		return true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = b
	return true
}

// ReadOptionalBool reads an environment variable as a boolean value.
// The field is left untouched (typically nil) when the variable is unset.
func ReadOptionalBool(ppfmt pp.PP, key string, field **bool) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = &b
	return true
}

// ReadOptionalInt reads an environment variable as an integer.
// The field is left untouched (typically nil) when the variable is unset.
func ReadOptionalInt(ppfmt pp.PP, key string, field **int) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false
	}

	*field = &i
	return true
}

// ReadNonnegDuration reads an environment variable and parses it as a time duration.
func ReadNonnegDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%v", key, *field)
		return true
	}

	t, err := time.ParseDuration(val)

	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, val, err)
		return false
	case t < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%v) is negative", key, t)
		return false
	}

	*field = t
	return true
}
