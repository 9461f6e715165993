package config

import (
	"net/url"

	"github.com/notify-you/notify-you/internal/ntfy"
	"github.com/notify-you/notify-you/internal/pp"
)

// NtfyConfig holds the settings of the topic notifier.
type NtfyConfig struct {
	URL      string
	Token    string
	Username string
	Password string
	Message  ntfy.Message
}

// Credential picks the credential for the topic endpoint.
func (c *NtfyConfig) Credential() ntfy.Credential {
	return ntfy.NewCredential(c.Token, c.Username, c.Password)
}

// readTopicURL checks that the value looks like the URL of a topic.
func readTopicURL(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)

	u, err := url.Parse(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse the URL in %s: %v", key, err)
		return false
	}

	if !(u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https") && u.Opaque == "" && u.Host != "" && u.Fragment == "") {
		ppfmt.Noticef(pp.EmojiUserError, "The URL %q in %s does not look like a valid topic URL", u.Redacted(), key)
		ppfmt.Noticef(pp.EmojiUserError, `A valid example is "https://ntfy.sh/mytopic"`)
		return false
	}

	*field = u.String()
	return true
}

func readNtfyCredentials(ppfmt pp.PP, c *NtfyConfig) bool {
	if !ReadToken(ppfmt, "NTFY_TOKEN", "NTFY_TOKEN_FILE", &c.Token) {
		return false
	}

	c.Username = Getenv("NTFY_USERNAME")
	c.Password = Getenv("NTFY_PASSWORD")

	switch {
	case (c.Username == "") != (c.Password == ""):
		ppfmt.Noticef(pp.EmojiUserError, "NTFY_USERNAME and NTFY_PASSWORD must be set together")
		return false
	case c.Username != "" && c.Token != "":
		ppfmt.Noticef(pp.EmojiUserWarning, "The token is ignored because NTFY_USERNAME and NTFY_PASSWORD are set")
	}

	return true
}

func readNtfyMessage(ppfmt pp.PP, m *ntfy.Message) bool {
	if !ReadString(ppfmt, "NTFY_TITLE", &m.Title) ||
		!ReadOptionalInt(ppfmt, "NTFY_PRIORITY", &m.Priority) ||
		!ReadString(ppfmt, "NTFY_CLICK", &m.ClickAction) ||
		!ReadString(ppfmt, "NTFY_ICON", &m.Icon) ||
		!ReadString(ppfmt, "NTFY_ATTACH", &m.AttachmentLink) ||
		!ReadString(ppfmt, "NTFY_EMAIL", &m.Email) ||
		!ReadOptionalBool(ppfmt, "NTFY_MARKDOWN", &m.Markdown) {
		return false
	}

	if p := m.Priority; p != nil && ntfy.ClampPriority(*p) != *p {
		ppfmt.Noticef(pp.EmojiUserWarning,
			"NTFY_PRIORITY (%d) will be sent as %d because priorities from 1 to 5 are replaced",
			*p, ntfy.ClampPriority(*p))
	}

	if tags := GetenvAsList("NTFY_TAGS", ","); len(tags) > 0 {
		m.Tags = tags
	}

	if m.Email != "" {
		if err := ntfy.CheckEmail(m.Email); err != nil {
			ppfmt.Noticef(pp.EmojiUserError, "NTFY_EMAIL is not usable: %v", err)
			return false
		}
	}

	return true
}

// ReadNtfy reads the NTFY_* variables. The field is set to nil when NTFY_URL is unset.
func ReadNtfy(ppfmt pp.PP, field **NtfyConfig) bool {
	if Getenv("NTFY_URL") == "" {
		*field = nil
		return true
	}

	c := &NtfyConfig{} //nolint:exhaustruct
	if !readTopicURL(ppfmt, "NTFY_URL", &c.URL) ||
		!readNtfyCredentials(ppfmt, c) ||
		!readNtfyMessage(ppfmt, &c.Message) {
		return false
	}

	*field = c
	return true
}
