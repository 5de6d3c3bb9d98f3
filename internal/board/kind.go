// Package board generates and holds the hidden-tile grid shared by every
// game variant. It has no dependency on the rest of the arcade so the
// placement logic stays deterministic and easy to test.
package board

// Kind is the hidden content of a cell.
type Kind int

const (
	Empty   Kind = iota
	TargetA      // chicken
	TargetB      // banana
)

// String returns the lowercase name used in configs and logs.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case TargetA:
		return "chicken"
	case TargetB:
		return "banana"
	default:
		return "unknown"
	}
}

// Symbol returns the single-rune form used by layouts and debug output.
func (k Kind) Symbol() rune {
	switch k {
	case TargetA:
		return 'A'
	case TargetB:
		return 'B'
	default:
		return '.'
	}
}

// IsTarget reports whether the kind belongs to a player.
func (k Kind) IsTarget() bool {
	return k == TargetA || k == TargetB
}
