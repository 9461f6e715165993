package ntfy_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notify-you/notify-you/internal/ntfy"
)

func TestClampPriority(t *testing.T) {
	t.Parallel()

	for p := 1; p <= 5; p++ {
		require.Equal(t, ntfy.DefaultPriority, ntfy.ClampPriority(p))
	}
	for _, p := range []int{-100, -1, 0, 6, 7, 1000} {
		require.Equal(t, p, ntfy.ClampPriority(p))
	}
}

func TestCheckEmail(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"", "alice", "alice.example.com", "at"} {
		require.ErrorIs(t, ntfy.CheckEmail(email), ntfy.ErrInvalidEmail)
	}
	for _, email := range []string{"@", "alice@example.com", "a@b"} {
		require.NoError(t, ntfy.CheckEmail(email))
	}
}

func TestSetters(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)
	n := newNotifier(t, server, ntfy.BearerToken("T"))

	n.SetTitle("Привет")
	n.SetPriority(5)
	n.SetTags([]string{"warning", "skull"})
	n.SetClickAction("https://example.com/click")
	n.SetIcon("https://example.com/icon.png")
	require.NoError(t, n.SetEmail("alice@example.com"))
	n.AddAttachmentFromLink("https://example.com/file.pdf")

	require.Equal(t, ntfy.Headers{
		"Authorization": "Bearer T",
		"Title":         "Привет",
		"Priority":      "3",
		"Tags":          "warning, skull",
		"Click":         "https://example.com/click",
		"Icon":          "https://example.com/icon.png",
		"Email":         "alice@example.com",
		"Attach":        "https://example.com/file.pdf",
	}, n.Headers())
}

func TestSetPriority(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)
	n := newNotifier(t, server, ntfy.NoAuth{})

	for p := 1; p <= 5; p++ {
		n.SetPriority(p)
		require.Equal(t, "3", n.Headers()["Priority"])
	}
	for _, p := range []int{-1, 0, 6, 42} {
		n.SetPriority(p)
		require.Equal(t, fmt.Sprint(p), n.Headers()["Priority"])
	}
}

func TestSetEmail(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)

	for _, email := range []string{"", "alice", "alice.example.com"} {
		n := newNotifier(t, server, ntfy.NoAuth{})
		require.ErrorIs(t, n.SetEmail(email), ntfy.ErrInvalidEmail)
		require.NotContains(t, n.Headers(), "Email")
	}
	for _, email := range []string{"alice@example.com", "@", "x@y"} {
		n := newNotifier(t, server, ntfy.NoAuth{})
		require.NoError(t, n.SetEmail(email))
		require.Equal(t, email, n.Headers()["Email"])
	}
}

func TestSetHeaders(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)
	n := newNotifier(t, server, ntfy.BearerToken("T"))
	n.SetTitle("old")

	h := ntfy.Headers{"Tags": "tada", "X-Custom": "1"}
	n.SetHeaders(h)
	require.Equal(t, h, n.Headers())

	// the profile is a copy
	h["Tags"] = "changed"
	require.Equal(t, "tada", n.Headers()["Tags"])

	n.SetHeaders(nil)
	require.Empty(t, n.Headers())
	n.SetTitle("after nil")
	require.Equal(t, ntfy.Headers{"Title": "after nil"}, n.Headers())
}

func TestClear(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)

	for name, tc := range map[string]struct {
		cred     ntfy.Credential
		expected ntfy.Headers
	}{
		"token": {ntfy.BearerToken("T"), ntfy.Headers{"Markdown": "yes", "Authorization": "Bearer T"}},
		"basic": {
			ntfy.BasicAuth{Username: "user", Password: "pass"},
			ntfy.Headers{"Markdown": "yes", "Authorization": "Basic dXNlcjpwYXNz"},
		},
		"none": {ntfy.NoAuth{}, ntfy.Headers{"Markdown": "yes"}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			n := newNotifier(t, server, tc.cred)
			n.SetTitle("title")
			n.SetTags([]string{"a"})
			n.SetPriority(9)
			n.Clear()
			require.Equal(t, tc.expected, n.Headers())
		})
	}
}

func TestClearAfterSetHeaders(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)
	n := newNotifier(t, server, ntfy.BearerToken("T"))

	n.SetHeaders(ntfy.Headers{"Title": "no auth here"})
	n.Clear()
	require.Equal(t, ntfy.Headers{"Markdown": "yes"}, n.Headers())

	n.SetHeaders(ntfy.Headers{"Authorization": ""})
	n.Clear()
	require.Equal(t, ntfy.Headers{"Markdown": "yes"}, n.Headers())
}

func TestApply(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)
	n := newNotifier(t, server, ntfy.BearerToken("T"))
	n.SetIcon("https://example.com/old.png")

	priority := 0
	markdown := false
	require.NoError(t, n.Apply(ntfy.Message{
		Title:          "Backups",
		Priority:       &priority,
		Tags:           []string{"floppy_disk"},
		ClickAction:    "",
		Icon:           "",
		AttachmentLink: "https://example.com/report.pdf",
		Headers:        ntfy.Headers{"X-Custom": "1", "Title": "overridden"},
		Markdown:       &markdown,
		Email:          "ops@example.com",
	}))

	require.Equal(t, ntfy.Headers{
		"Authorization": "Bearer T",
		"Title":         "Backups",
		"Priority":      "0",
		"Tags":          "floppy_disk",
		"Icon":          "https://example.com/old.png",
		"Attach":        "https://example.com/report.pdf",
		"Markdown":      "no",
		"Email":         "ops@example.com",
		"X-Custom":      "1",
	}, n.Headers())
}

func TestApplyInvalidEmail(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, http.StatusOK, http.StatusOK)
	n := newNotifier(t, server, ntfy.NoAuth{})

	err := n.Apply(ntfy.Message{Title: "ignored", Email: "nobody"}) //nolint:exhaustruct
	require.ErrorIs(t, err, ntfy.ErrInvalidEmail)
	require.Empty(t, n.Headers())
}
