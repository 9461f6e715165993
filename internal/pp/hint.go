package pp

// Hint identifies a piece of advice printed by [PP.Hintf].
type Hint int

const (
	// HintUnverifiedCredentials follows a credential check that could not reach the server.
	HintUnverifiedCredentials Hint = iota
)
