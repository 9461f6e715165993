package pushbullet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/transport"
)

// Push is the content of a push: a [Note], a [Link], or a [File].
type Push interface {
	request() pushRequest
}

// Note is a push with a title and a body.
type Note struct {
	Title string
	Body  string
}

// Link is a push that opens a URL.
type Link struct {
	Title string
	Body  string
	URL   string
}

// File is a push of an uploaded file. URL is an optional link.
type File struct {
	Title    string
	Body     string
	FileName string
	FileType string
	FileURL  string
	URL      string
}

var (
	_ Push = Note{} //nolint:exhaustruct
	_ Push = Link{} //nolint:exhaustruct
	_ Push = File{} //nolint:exhaustruct
)

// pushRequest is the form posted to /pushes.
type pushRequest struct {
	Type       string `url:"type"`
	DeviceIden string `url:"device_iden"`
	Title      string `url:"title"`
	Body       string `url:"body"`
	URL        string `url:"url,omitempty"`
	FileName   string `url:"file_name,omitempty"`
	FileType   string `url:"file_type,omitempty"`
	FileURL    string `url:"file_url,omitempty"`
}

func (n Note) request() pushRequest {
	return pushRequest{Type: "note", Title: n.Title, Body: n.Body} //nolint:exhaustruct
}

func (l Link) request() pushRequest {
	return pushRequest{Type: "link", Title: l.Title, Body: l.Body, URL: l.URL} //nolint:exhaustruct
}

func (f File) request() pushRequest {
	return pushRequest{ //nolint:exhaustruct
		Type:     "file",
		Title:    f.Title,
		Body:     f.Body,
		URL:      f.URL,
		FileName: f.FileName,
		FileType: f.FileType,
		FileURL:  f.FileURL,
	}
}

func (d Device) post(ctx context.Context, p Push) (transport.Response, error) {
	req := p.request()
	req.DeviceIden = d.Iden

	values, err := query.Values(req)
	if err != nil {
		return transport.Response{}, fmt.Errorf("failed to encode the push: %w", err)
	}

	return transport.PostForm(ctx, d.client.doer, d.client.url("/pushes"), d.client.header(), values)
}

// Push pushes p to the device.
//
// Failures are only reported through ppfmt; the caller cannot tell whether
// the push was delivered. d must come from [Client.ListDevices] or [Client.GetDevice].
func (d Device) Push(ctx context.Context, ppfmt pp.PP, p Push) {
	kind := p.request().Type

	if d.client == nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Cannot push a %s to %q: the device was not obtained from a client",
			kind, d.Describe())
		return
	}

	resp, err := d.post(ctx, p)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to push a %s to %q: %v", kind, d.Describe(), err)
		return
	}

	if resp.StatusCode != http.StatusOK {
		ppfmt.Noticef(pp.EmojiError, "Failed to push a %s to %q (HTTP %d): %s",
			kind, d.Describe(), resp.StatusCode, describeBody(resp.Body))
		return
	}

	ppfmt.Infof(pp.EmojiPush, "Pushed a %s to %q", kind, d.Describe())
}

// Send pushes a note, or a link if link is not empty. Like [Device.Push],
// failures are only reported through ppfmt.
func (d Device) Send(ctx context.Context, ppfmt pp.PP, title, body, link string) {
	if link == "" {
		d.Push(ctx, ppfmt, Note{Title: title, Body: body})
		return
	}
	d.Push(ctx, ppfmt, Link{Title: title, Body: body, URL: link})
}
