// Package ntfy implements a client of ntfy-style topic push gateways.
package ntfy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/transport"
)

var (
	// ErrAuthorization means the server rejected the credential given to [New].
	ErrAuthorization = errors.New("authorization failed")

	// ErrInvalidEmail means an email address does not contain "@".
	ErrInvalidEmail = errors.New("invalid email address")
)

// Notifier sends text notifications to one topic endpoint.
//
// A Notifier keeps a profile of headers that the setters modify and
// [Notifier.SendProfile] sends. It is not safe for concurrent use; callers
// sharing one Notifier across goroutines must serialize access themselves.
type Notifier struct {
	endpoint   string
	credential Credential
	doer       transport.Doer
	headers    Headers
}

// New creates a [Notifier] for the endpoint.
//
// Unless cred is [NoAuth], New first sends a GET request to the endpoint with
// the credential. A 401 response makes New fail with [ErrAuthorization].
// Network failures during this check are only reported through ppfmt.
func New(ctx context.Context, ppfmt pp.PP, doer transport.Doer, endpoint string, cred Credential,
) (*Notifier, error) {
	if cred == nil {
		cred = NoAuth{}
	}

	n := &Notifier{
		endpoint:   endpoint,
		credential: cred,
		doer:       doer,
		headers:    Headers{},
	}

	auth, ok := cred.authorization()
	if !ok {
		return n, nil
	}

	resp, err := transport.Get(ctx, doer, endpoint, map[string]string{HeaderAuthorization: auth})
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiError, "Failed to verify the %s for %s: %v", cred.Describe(), n.redactedEndpoint(), err)
		ppfmt.Hintf(pp.HintUnverifiedCredentials,
			"The credentials were not verified; notifications may be rejected later")
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s", ErrAuthorization, cred.rejected())
	}

	n.headers[HeaderAuthorization] = auth
	return n, nil
}

func (n *Notifier) redactedEndpoint() string {
	u, err := url.Parse(n.endpoint)
	if err != nil {
		return "(URL redacted)"
	}
	return u.Redacted()
}

// Describe calls the callback with the service name "ntfy" and the redacted endpoint.
func (n *Notifier) Describe(callback func(service, params string)) {
	callback("ntfy", n.redactedEndpoint())
}

// Headers returns a copy of the stored profile.
func (n *Notifier) Headers() Headers { return n.headers.clone() }

// SetTitle sets the title shown above the message.
func (n *Notifier) SetTitle(title string) { n.headers[HeaderTitle] = title }

// SetPriority stores the priority after passing it through [ClampPriority].
func (n *Notifier) SetPriority(priority int) { n.headers[HeaderPriority] = formatPriority(priority) }

// SetTags sets the tags, joined with ", ".
func (n *Notifier) SetTags(tags []string) { n.headers[HeaderTags] = formatTags(tags) }

// SetClickAction sets the link opened when the notification is clicked.
func (n *Notifier) SetClickAction(action string) { n.headers[HeaderClick] = action }

// SetIcon sets the link to the icon of the notification.
func (n *Notifier) SetIcon(icon string) { n.headers[HeaderIcon] = icon }

// SetEmail sets the address to which notifications are forwarded.
// It fails with [ErrInvalidEmail] and keeps the profile unchanged if email has no "@".
func (n *Notifier) SetEmail(email string) error {
	if err := CheckEmail(email); err != nil {
		return err
	}
	n.headers[HeaderEmail] = email
	return nil
}

// AddAttachmentFromLink attaches the file at the link.
func (n *Notifier) AddAttachmentFromLink(attachment string) { n.headers[HeaderAttach] = attachment }

// SetHeaders replaces the whole profile with a copy of headers.
func (n *Notifier) SetHeaders(headers Headers) { n.headers = headers.clone() }

// Clear resets the profile to Markdown: yes, keeping the Authorization header if there is one.
func (n *Notifier) Clear() {
	auth, found := n.headers[HeaderAuthorization]
	n.headers = Headers{HeaderMarkdown: markdownYes}
	if found && auth != "" {
		n.headers[HeaderAuthorization] = auth
	}
}
