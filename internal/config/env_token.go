package config

import (
	"github.com/notify-you/notify-you/internal/file"
	"github.com/notify-you/notify-you/internal/pp"
)

func readTokenFile(ppfmt pp.PP, fileKey string) (string, bool) {
	path := Getenv(fileKey)
	if path == "" {
		return "", true
	}

	token, ok := file.ReadString(ppfmt, path)
	if !ok {
		return "", false
	}

	if token == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The file specified by %s does not contain a token", fileKey)
		return "", false
	}

	return token, true
}

// ReadToken reads a token either from the variable key or from the file named
// by the variable fileKey. When both are set, they must agree. The field is
// left untouched if neither is set.
func ReadToken(ppfmt pp.PP, key, fileKey string, field *string) bool {
	tokenPlain := Getenv(key)

	tokenFile, ok := readTokenFile(ppfmt, fileKey)
	if !ok {
		return false
	}

	switch {
	case tokenPlain != "" && tokenFile != "" && tokenPlain != tokenFile:
		ppfmt.Noticef(pp.EmojiUserError,
			"The value of %s does not match the token found in the file specified by %s; they must specify the same token",
			key, fileKey)
		return false
	case tokenPlain != "":
		*field = tokenPlain
	case tokenFile != "":
		*field = tokenFile
	}

	return true
}
