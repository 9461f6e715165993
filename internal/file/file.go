// Package file reads local files through a replaceable filesystem.
package file

import (
	"bytes"

	"github.com/spf13/afero"

	"github.com/notify-you/notify-you/internal/pp"
)

// FS is the filesystem used to read token files and files to be pushed.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadString reads the content of the file at path, with surrounding spaces trimmed.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	return string(bytes.TrimSpace(body)), true
}

// Open opens the file at path for reading. The caller must close it.
func Open(path string) (afero.File, error) {
	return FS.Open(path)
}
