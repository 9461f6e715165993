// Package transport performs the HTTP(S) exchanges of the notification clients.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Doer sends one HTTP(S) request. [*retryablehttp.Client] implements it.
type Doer interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

var _ Doer = (*retryablehttp.Client)(nil)

const (
	// DefaultTimeout is the default timeout of each request.
	DefaultTimeout = 10 * time.Second

	// maxReadLength is the maximum number of bytes read from a response body.
	maxReadLength int64 = 1 << 20
)

func neverRetry(_ context.Context, _ *http.Response, err error) (bool, error) {
	return false, err
}

// New creates a client that sends each request exactly once.
func New(timeout time.Duration) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = 0
	c.CheckRetry = neverRetry
	c.HTTPClient.Timeout = timeout
	return c
}

// Request describes an outgoing request. Stream, if not nil, replaces Body;
// it is called once to learn the length and once more for the actual sending.
type Request struct {
	Method      string
	URL         string
	Header      map[string]string
	ContentType string
	Body        []byte
	Stream      retryablehttp.ReaderFunc
}

// Response holds the parts of a response the clients look at.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Exchange sends the request and reads (at most 1 MiB of) the response body.
func Exchange(ctx context.Context, doer Doer, r Request) (Response, error) {
	var body any
	switch {
	case r.Stream != nil:
		body = r.Stream
	case r.Body != nil:
		body = r.Body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to prepare the request: %w", err)
	}

	for k, v := range r.Header {
		req.Header.Set(k, v)
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return Response{}, err //nolint:wrapcheck
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxReadLength))
	if err != nil {
		return Response{}, fmt.Errorf("failed to read the response: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

// Get sends a GET request.
func Get(ctx context.Context, doer Doer, rawURL string, header map[string]string) (Response, error) {
	return Exchange(ctx, doer, Request{
		Method:      http.MethodGet,
		URL:         rawURL,
		Header:      header,
		ContentType: "",
		Body:        nil,
		Stream:      nil,
	})
}

// Post sends a POST request with a raw body.
func Post(ctx context.Context, doer Doer, rawURL string, header map[string]string,
	contentType string, body []byte,
) (Response, error) {
	return Exchange(ctx, doer, Request{
		Method:      http.MethodPost,
		URL:         rawURL,
		Header:      header,
		ContentType: contentType,
		Body:        body,
		Stream:      nil,
	})
}

// PostStream sends a POST request whose body is read from a fresh reader
// returned by open. The reader is closed after sending if it is an [io.Closer],
// and its Len method, if any, gives the Content-Length.
func PostStream(ctx context.Context, doer Doer, rawURL string, header map[string]string,
	contentType string, open retryablehttp.ReaderFunc,
) (Response, error) {
	return Exchange(ctx, doer, Request{
		Method:      http.MethodPost,
		URL:         rawURL,
		Header:      header,
		ContentType: contentType,
		Body:        nil,
		Stream:      open,
	})
}

// PostForm sends a POST request with URL-encoded form fields.
func PostForm(ctx context.Context, doer Doer, rawURL string, header map[string]string,
	values url.Values,
) (Response, error) {
	return Post(ctx, doer, rawURL, header, "application/x-www-form-urlencoded", []byte(values.Encode()))
}

// PostJSON sends a POST request with v encoded as JSON.
func PostJSON(ctx context.Context, doer Doer, rawURL string, header map[string]string, v any) (Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return Response{}, fmt.Errorf("failed to encode the request: %w", err)
	}
	return Post(ctx, doer, rawURL, header, "application/json", buf.Bytes())
}
