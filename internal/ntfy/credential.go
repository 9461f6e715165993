package ntfy

import "encoding/base64"

// Credential is how a [Notifier] authenticates itself.
// It is one of [NoAuth], [BearerToken], and [BasicAuth].
type Credential interface {
	// Describe returns the kind of the credential without revealing it.
	Describe() string

	authorization() (string, bool)
	rejected() string
}

// NoAuth sends notifications anonymously.
type NoAuth struct{}

// BearerToken authenticates with an access token.
type BearerToken string

// BasicAuth authenticates with a username and a password.
type BasicAuth struct {
	Username string
	Password string
}

var (
	_ Credential = NoAuth{}
	_ Credential = BearerToken("")
	_ Credential = BasicAuth{} //nolint:exhaustruct
)

// NewCredential picks the credential to use. A username and a password,
// when both given, take precedence over the token.
func NewCredential(token, username, password string) Credential {
	switch {
	case username != "" && password != "":
		return BasicAuth{Username: username, Password: password}
	case token != "":
		return BearerToken(token)
	default:
		return NoAuth{}
	}
}

// Describe returns "none".
func (NoAuth) Describe() string { return "none" }

func (NoAuth) authorization() (string, bool) { return "", false }

func (NoAuth) rejected() string { return "anonymous access denied" }

// Describe returns "token".
func (BearerToken) Describe() string { return "token" }

func (t BearerToken) authorization() (string, bool) { return "Bearer " + string(t), true }

func (BearerToken) rejected() string { return "token invalid" }

// Describe returns "username and password".
func (BasicAuth) Describe() string { return "username and password" }

func (b BasicAuth) authorization() (string, bool) {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(b.Username+":"+b.Password)), true
}

func (BasicAuth) rejected() string { return "invalid credentials" }
