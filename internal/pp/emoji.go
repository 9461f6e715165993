package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiNotification Emoji = "📨" // topic notifications
	EmojiPush         Emoji = "📱" // device pushes
	EmojiUpload       Emoji = "📤" // file uploads
	EmojiDevice       Emoji = "🔍" // resolving devices

	EmojiSignal Emoji = "🚨" // catching signals
	EmojiBye    Emoji = "👋" // bye!

	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
