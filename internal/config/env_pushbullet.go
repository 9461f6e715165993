package config

import (
	"strconv"

	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/pushbullet"
)

// PushbulletConfig holds the settings of the device push.
// BaseURL overrides [pushbullet.DefaultBaseURL] when it is not empty.
type PushbulletConfig struct {
	BaseURL string
	Token   string
	Device  pushbullet.Selector
	Title   string
	Link    string
	File    string
}

func readDeviceSelector(ppfmt pp.PP, field *pushbullet.Selector) bool {
	name := Getenv("PUSHBULLET_DEVICE")
	iden := Getenv("PUSHBULLET_DEVICE_IDEN")
	index := Getenv("PUSHBULLET_DEVICE_INDEX")

	var sel pushbullet.Selector
	var set []string
	if name != "" {
		sel = pushbullet.ByName(name)
		set = append(set, "PUSHBULLET_DEVICE")
	}
	if iden != "" {
		sel = pushbullet.ByIden(iden)
		set = append(set, "PUSHBULLET_DEVICE_IDEN")
	}
	if index != "" {
		i, err := strconv.Atoi(index)
		switch {
		case err != nil:
			ppfmt.Noticef(pp.EmojiUserError, "PUSHBULLET_DEVICE_INDEX (%q) is not a number: %v", index, err)
			return false
		case i < 0:
			ppfmt.Noticef(pp.EmojiUserError, "PUSHBULLET_DEVICE_INDEX (%d) is negative", i)
			return false
		}
		sel = pushbullet.ByIndex(i)
		set = append(set, "PUSHBULLET_DEVICE_INDEX")
	}

	switch len(set) {
	case 0:
		ppfmt.Infof(pp.EmojiBullet, "Use default PUSHBULLET_DEVICE_INDEX=0")
		sel = pushbullet.ByIndex(0)
	case 1:
	default:
		ppfmt.Noticef(pp.EmojiUserError, "%s cannot be set at the same time", pp.JoinAnd(set))
		return false
	}

	*field = sel
	return true
}

// ReadPushbullet reads the PUSHBULLET_* variables. The field is set to nil
// when no access token is given.
func ReadPushbullet(ppfmt pp.PP, field **PushbulletConfig) bool {
	var token string
	if !ReadToken(ppfmt, "PUSHBULLET_TOKEN", "PUSHBULLET_TOKEN_FILE", &token) {
		return false
	}
	if token == "" {
		*field = nil
		return true
	}

	c := &PushbulletConfig{Token: token} //nolint:exhaustruct
	if !ReadString(ppfmt, "PUSHBULLET_BASE_URL", &c.BaseURL) ||
		!readDeviceSelector(ppfmt, &c.Device) ||
		!ReadString(ppfmt, "PUSHBULLET_TITLE", &c.Title) ||
		!ReadString(ppfmt, "PUSHBULLET_LINK", &c.Link) ||
		!ReadString(ppfmt, "PUSHBULLET_FILE", &c.File) {
		return false
	}

	*field = c
	return true
}
