package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/joho/godotenv"

	"github.com/notify-you/notify-you/internal/file"
	"github.com/notify-you/notify-you/internal/pp"
)

// DotEnvFile is the file read by the command before the environment.
const DotEnvFile = ".env"

// LoadDotEnv copies the variables defined in the file at path into the
// environment. Variables that are already set win over the file, and a
// missing file is not an error.
func LoadDotEnv(ppfmt pp.PP, path string) bool {
	f, err := file.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to open %q: %v", path, err)
		return false
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse %q: %v", path, err)
		return false
	}

	count := 0
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if _, found := os.LookupEnv(key); found {
			continue
		}
		if err := os.Setenv(key, vars[key]); err != nil {
			ppfmt.Noticef(pp.EmojiImpossible, "Failed to set %s: %v", key, err)
			return false
		}
		count++
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Loaded %d variable(s) from %q", count, path)
	return true
}
