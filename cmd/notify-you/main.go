// Package main is the entry point of the notification sender.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notify-you/notify-you/internal/config"
	"github.com/notify-you/notify-you/internal/ntfy"
	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/pushbullet"
	"github.com/notify-you/notify-you/internal/signal"
	"github.com/notify-you/notify-you/internal/transport"
)

// Version is the version of the sender that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "notify-you"
	}
	return fmt.Sprintf("notify-you (%s)", Version)
}

func notifyTopic(ctx context.Context, ppfmt pp.PP, doer transport.Doer, c *config.NtfyConfig, text string) bool {
	n, err := ntfy.New(ctx, ppfmt, doer, c.URL, c.Credential())
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to set up the topic notifier: %v", err)
		return false
	}

	n.Clear()
	if err := n.Apply(c.Message); err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to set up the topic notifier: %v", err)
		return false
	}

	n.SendProfile(ctx, ppfmt, text)
	return true
}

func pushToDevice(ctx context.Context, ppfmt pp.PP, doer transport.Doer, c *config.PushbulletConfig, text string) bool {
	client := pushbullet.New(doer, c.Token)
	if c.BaseURL != "" {
		client.BaseURL = c.BaseURL
	}

	d, err := client.GetDevice(ctx, c.Device)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to find the device by %s: %v", c.Device.Describe(), err)
		return false
	}
	ppfmt.Infof(pp.EmojiDevice, "Found the device %q", d.Describe())

	if c.File == "" {
		d.Send(ctx, ppfmt, c.Title, text, c.Link)
		return true
	}

	if err := d.SendFile(ctx, ppfmt, c.Title, text, c.File, c.Link); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to push the file %q: %v", c.File, err)
		return false
	}
	return true
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

func realMain(args []string, output io.Writer) int {
	ppfmt, ok := config.SetupPP(output)
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the sender
	ppfmt.Noticef(pp.EmojiStar, "%s", formatName())

	// Read the config
	c := config.Default()
	if !config.LoadDotEnv(ppfmt, config.DotEnvFile) || !c.ReadEnv(ppfmt) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	c.Print(ppfmt)

	// Catch signals SIGINT and SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), ppfmt)
	defer stop()

	doer := transport.New(c.Timeout)
	text := strings.Join(args, " ")

	ok = true
	if c.Ntfy != nil && !notifyTopic(ctx, ppfmt, doer, c.Ntfy, text) {
		ok = false
	}
	if c.Pushbullet != nil && !pushToDevice(ctx, ppfmt, doer, c.Pushbullet, text) {
		ok = false
	}

	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	if !ok {
		return 1
	}
	return 0
}
