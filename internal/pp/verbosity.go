package pp

// Verbosity is the level of a message. A printer hides the levels below its own.
type Verbosity int

const (
	// Info is for progress: settings read, devices found, pushes sent.
	Info Verbosity = iota

	// Notice is for failed deliveries and configuration mistakes; QUIET=true keeps only these.
	Notice
)
