// Package pp prints the progress and the failures of deliveries.
//
// Sends that cannot return their failures (ntfy and device pushes are fire
// and forget) report them here, so a [PP] is passed to every client call.
package pp

//go:generate mockgen -typed -destination=../mocks/mock_pp.go -package=mocks . PP

// PP is where the clients and the command report what happened.
type PP interface {
	// SetEmoji returns a printer that does or does not prefix messages with emojis.
	SetEmoji(emoji bool) PP

	// SetVerbosity returns a printer that hides messages below v.
	SetVerbosity(v Verbosity) PP

	// IsShowing tells whether messages at the level v are printed.
	IsShowing(v Verbosity) bool

	// Indent returns a printer that nests its messages one level deeper.
	Indent() PP

	// Infof reports progress, such as a notification that was sent.
	Infof(emoji Emoji, format string, args ...any)

	// Noticef reports what the user must see, such as a delivery that failed.
	Noticef(emoji Emoji, format string, args ...any)

	// Hintf prints advice at the level [Info], at most once per hint for
	// the printer and the printers derived from it.
	Hintf(hint Hint, format string, args ...any)
}
