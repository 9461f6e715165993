// Package config reads and parses configurations.
package config

import (
	"time"

	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/transport"
)

// Config holds the configuration of the command.
// At least one of Ntfy and Pushbullet is non-nil after a successful [Config.ReadEnv].
type Config struct {
	Timeout    time.Duration
	Ntfy       *NtfyConfig
	Pushbullet *PushbulletConfig
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Timeout:    transport.DefaultTimeout,
		Ntfy:       nil,
		Pushbullet: nil,
	}
}

// ReadEnv calls the relevant readers to read all relevant environment variables except
// the output-related ones (QUIET and EMOJI).
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadNonnegDuration(ppfmt, "TIMEOUT", &c.Timeout) ||
		!ReadNtfy(ppfmt, &c.Ntfy) ||
		!ReadPushbullet(ppfmt, &c.Pushbullet) {
		return false
	}

	if c.Ntfy == nil && c.Pushbullet == nil {
		ppfmt.Noticef(pp.EmojiUserError, "Nothing was specified in %s",
			pp.JoinOr([]string{"NTFY_URL", "PUSHBULLET_TOKEN", "PUSHBULLET_TOKEN_FILE"}))
		return false
	}

	return true
}
