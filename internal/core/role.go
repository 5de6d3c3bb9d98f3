package core

import "github.com/vovakirdan/tui-arcade-tiles/internal/board"

// Role identifies one of the two fixed seats in a game.
type Role int

const (
	RoleNone Role = iota
	RoleA         // hunts chickens
	RoleB         // hunts bananas
)

// Roles lists both seats in turn order.
var Roles = [2]Role{RoleA, RoleB}

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleA:
		return "chicken"
	case RoleB:
		return "banana"
	default:
		return "none"
	}
}

// Other returns the opposing role. RoleNone has no opponent.
func (r Role) Other() Role {
	switch r {
	case RoleA:
		return RoleB
	case RoleB:
		return RoleA
	default:
		return RoleNone
	}
}

// Target returns the cell kind this role is trying to uncover.
func (r Role) Target() board.Kind {
	switch r {
	case RoleA:
		return board.TargetA
	case RoleB:
		return board.TargetB
	default:
		return board.Empty
	}
}

// Owner returns the role whose target the kind is, or RoleNone for Empty.
func Owner(k board.Kind) Role {
	switch k {
	case board.TargetA:
		return RoleA
	case board.TargetB:
		return RoleB
	default:
		return RoleNone
	}
}
