package config

import (
	"fmt"
	"net/url"

	"github.com/notify-you/notify-you/internal/pp"
)

const itemTitleWidth = 20

func describeString(s string) string {
	if s == "" {
		return pp.None
	}
	return s
}

func describeOptional[T any](v *T) string {
	if v == nil {
		return "(default)"
	}
	return fmt.Sprint(*v)
}

func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "(URL redacted)"
	}
	return u.Redacted()
}

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, "%s", title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Timeouts:")
	item("Request timeout:", "%v", c.Timeout)

	if c.Ntfy != nil {
		m := c.Ntfy.Message
		section("Topic notifications:")
		item("URL:", "%s", redactURL(c.Ntfy.URL))
		item("Credential:", "%s", c.Ntfy.Credential().Describe())
		item("Title:", "%s", describeString(m.Title))
		item("Priority:", "%s", describeOptional(m.Priority))
		item("Tags:", "%s", pp.Join(m.Tags))
		item("Click action:", "%s", describeString(m.ClickAction))
		item("Icon:", "%s", describeString(m.Icon))
		item("Attachment:", "%s", describeString(m.AttachmentLink))
		item("Email:", "%s", describeString(m.Email))
		item("Markdown?", "%s", describeOptional(m.Markdown))
	}

	if c.Pushbullet != nil {
		section("Device pushes:")
		item("Device:", "%s", c.Pushbullet.Device.Describe())
		item("Title:", "%s", describeString(c.Pushbullet.Title))
		item("Link:", "%s", describeString(c.Pushbullet.Link))
		item("File:", "%s", describeString(c.Pushbullet.File))
	}
}
