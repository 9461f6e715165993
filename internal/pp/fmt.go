package pp

import (
	"fmt"
	"io"
	"strings"
)

type printer struct {
	out   io.Writer
	emoji bool
	depth int
	level Verbosity

	// shown is shared by every printer derived from the same [New] call.
	shown map[Hint]bool
}

// New creates a printer writing to out, with emojis and every message shown.
func New(out io.Writer) PP {
	return printer{
		out:   out,
		emoji: true,
		depth: 0,
		level: Info,
		shown: map[Hint]bool{},
	}
}

func (p printer) SetEmoji(emoji bool) PP {
	p.emoji = emoji
	return p
}

func (p printer) SetVerbosity(v Verbosity) PP {
	p.level = v
	return p
}

func (p printer) IsShowing(v Verbosity) bool { return v >= p.level }

func (p printer) Indent() PP {
	p.depth++
	return p
}

// write prints msg in a single write. Server responses quoted in failure
// messages may span several lines; the lines after the first are nested
// under the message.
func (p printer) write(v Verbosity, emoji Emoji, msg string) {
	if !p.IsShowing(v) {
		return
	}

	margin := strings.Repeat(indentPrefix, p.depth)
	first := margin
	if p.emoji {
		first += string(emoji) + " "
	}

	var b strings.Builder
	for i, line := range strings.Split(strings.TrimRight(msg, "\n"), "\n") {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString(margin + indentPrefix)
		}
		b.WriteString(strings.TrimRight(line, "\r"))
		b.WriteByte('\n')
	}

	_, _ = io.WriteString(p.out, b.String())
}

func (p printer) Infof(emoji Emoji, format string, args ...any) {
	p.write(Info, emoji, fmt.Sprintf(format, args...))
}

func (p printer) Noticef(emoji Emoji, format string, args ...any) {
	p.write(Notice, emoji, fmt.Sprintf(format, args...))
}

func (p printer) Hintf(hint Hint, format string, args ...any) {
	if p.shown[hint] {
		return
	}
	p.shown[hint] = true
	p.Infof(EmojiHint, format, args...)
}
