// Package pushbullet implements a client of the Pushbullet API for pushing
// notes, links, and files to registered devices.
package pushbullet

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/notify-you/notify-you/internal/transport"
)

// DefaultBaseURL is the root of the Pushbullet API.
const DefaultBaseURL = "https://api.pushbullet.com/v2"

const tokenHeader = "Access-Token"

var (
	// ErrInvalidArgument means the arguments do not make sense together.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means no device matched the selector.
	ErrNotFound = errors.New("device not found")

	// ErrDeserialization means a response did not have the expected shape.
	ErrDeserialization = errors.New("unexpected response")

	// ErrUploadRequest means the first step of [Device.SendFile] failed.
	ErrUploadRequest = errors.New("upload request failed")

	// ErrFileUpload means the second step of [Device.SendFile] failed.
	ErrFileUpload = errors.New("file upload failed")

	// ErrPushSend means the last step of [Device.SendFile] failed.
	ErrPushSend = errors.New("push failed")
)

// Client accesses the account identified by an access token.
// Nothing is cached: every query fetches fresh data.
type Client struct {
	// BaseURL is the root of the API, [DefaultBaseURL] unless overridden.
	BaseURL string

	token string
	doer  transport.Doer
}

// New creates a [Client] with the access token.
func New(doer transport.Doer, token string) *Client {
	return &Client{BaseURL: DefaultBaseURL, token: token, doer: doer}
}

func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + path
}

func (c *Client) header() map[string]string {
	return map[string]string{tokenHeader: c.token}
}

// apiError is the "error" object in the responses of Pushbullet.
type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *apiError) String() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Type != "":
		return e.Type
	default:
		return "unknown error"
	}
}

// describeBody extracts the error message from a response body if there is one.
func describeBody(body []byte) string {
	var r struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &r); err == nil && r.Error != nil {
		return r.Error.String()
	}
	return strings.TrimSpace(string(body))
}

// decode parses a 200 response into v.
func decode(resp transport.Response, v any) error {
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w (HTTP %d): %s", ErrDeserialization, resp.StatusCode, describeBody(resp.Body))
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return nil
}
