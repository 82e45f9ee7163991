// Package newgame decides which species, job and weapon combinations a new
// character may start with, and how strongly each is recommended.
package newgame

// Verdict rates a character-creation choice. Verdicts are totally ordered:
// Banned < Restricted < Unrestricted.
type Verdict int

const (
	Banned Verdict = iota
	Restricted
	Unrestricted
)

// String returns the verdict's lower-case name.
func (v Verdict) String() string {
	switch v {
	case Banned:
		return "banned"
	case Restricted:
		return "restricted"
	case Unrestricted:
		return "unrestricted"
	default:
		return "unknown"
	}
}

// Colour returns the display tier used by the creation menu.
// Postcondition: returns "red", "yellow" or "white" for valid verdicts.
func (v Verdict) Colour() string {
	switch v {
	case Banned:
		return "red"
	case Restricted:
		return "yellow"
	case Unrestricted:
		return "white"
	default:
		return "unknown"
	}
}

// Lesser returns the lower of a and b.
func Lesser(a, b Verdict) Verdict {
	return min(a, b)
}
