package ntfy

import (
	"context"
	"net/http"

	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/transport"
)

// Message holds the options of one call of [Notifier.Send].
// Empty strings and nil fields are treated as not given.
type Message struct {
	Title          string
	Priority       *int
	Tags           []string
	ClickAction    string
	Icon           string
	AttachmentLink string
	Headers        Headers
	Markdown       *bool
	Email          string
}

// Apply stores the options set in msg in the profile, as the setters would.
// msg.Headers are merged first so that the other options win over them.
// Nothing changes if msg.Email is malformed, in which case Apply fails with
// [ErrInvalidEmail].
func (n *Notifier) Apply(msg Message) error {
	if msg.Email != "" {
		if err := CheckEmail(msg.Email); err != nil {
			return err
		}
	}

	for k, v := range msg.Headers {
		n.headers[k] = v
	}
	if msg.Title != "" {
		n.SetTitle(msg.Title)
	}
	if msg.Priority != nil {
		n.SetPriority(*msg.Priority)
	}
	if msg.Tags != nil {
		n.SetTags(msg.Tags)
	}
	if msg.ClickAction != "" {
		n.SetClickAction(msg.ClickAction)
	}
	if msg.Icon != "" {
		n.SetIcon(msg.Icon)
	}
	if msg.AttachmentLink != "" {
		n.AddAttachmentFromLink(msg.AttachmentLink)
	}
	if msg.Markdown != nil {
		n.headers[HeaderMarkdown] = formatMarkdown(*msg.Markdown)
	}
	if msg.Email != "" {
		n.headers[HeaderEmail] = msg.Email
	}
	return nil
}

// Send sends text with headers built from msg alone. The stored profile is
// not sent, except that the Authorization header of the credential is added
// unless msg.Headers has one.
//
// Send only returns an error, [ErrInvalidEmail], when msg.Email is malformed;
// in that case nothing is sent. Delivery failures (network errors and
// non-200 responses) are reported through ppfmt and are not returned.
//
// msg.Priority does not go into this notification. It is stored in the
// profile as if [Notifier.SetPriority] were called, before msg.Email is
// checked, so a Send failing with [ErrInvalidEmail] still changes the profile.
func (n *Notifier) Send(ctx context.Context, ppfmt pp.PP, text string, msg Message) error {
	headers := Headers{HeaderMarkdown: markdownYes}
	if msg.Headers != nil {
		headers = msg.Headers.clone()
	}

	if msg.Title != "" {
		headers[HeaderTitle] = msg.Title
	}
	if msg.Priority != nil {
		n.SetPriority(*msg.Priority)
	}
	if msg.Tags != nil {
		headers[HeaderTags] = formatTags(msg.Tags)
	}
	if msg.ClickAction != "" {
		headers[HeaderClick] = msg.ClickAction
	}
	if msg.Icon != "" {
		headers[HeaderIcon] = msg.Icon
	}
	if msg.AttachmentLink != "" {
		headers[HeaderAttach] = msg.AttachmentLink
	}
	if msg.Markdown != nil {
		headers[HeaderMarkdown] = formatMarkdown(*msg.Markdown)
	}
	if msg.Email != "" {
		if err := CheckEmail(msg.Email); err != nil {
			return err
		}
		headers[HeaderEmail] = msg.Email
	}

	if _, found := headers[HeaderAuthorization]; !found {
		if auth, ok := n.credential.authorization(); ok {
			headers[HeaderAuthorization] = auth
		}
	}

	n.post(ctx, ppfmt, text, headers)
	return nil
}

// SendProfile sends text with the stored profile as its headers.
// Like [Notifier.Send], delivery failures are only reported through ppfmt.
func (n *Notifier) SendProfile(ctx context.Context, ppfmt pp.PP, text string) {
	n.post(ctx, ppfmt, text, n.headers.clone())
}

func (n *Notifier) post(ctx context.Context, ppfmt pp.PP, text string, headers Headers) {
	resp, err := transport.Post(ctx, n.doer, n.endpoint, headers, "", []byte(text))
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to send a notification to %s: %v", n.redactedEndpoint(), err)
		return
	}

	if resp.StatusCode != http.StatusOK {
		ppfmt.Noticef(pp.EmojiError, "Failed to send a notification to %s (HTTP %d)",
			n.redactedEndpoint(), resp.StatusCode)
		return
	}

	ppfmt.Infof(pp.EmojiNotification, "Sent a notification to %s", n.redactedEndpoint())
}
