package core

// Player is the per-seat record of a game.
type Player struct {
	Name     string
	Role     Role
	Score    int  // own targets revealed
	Ready    bool // race only
	Lost     bool // revealed an opponent target
	Mistakes int  // wrong-target reveals
}

// Active reports whether the player is still in the game.
func (p Player) Active() bool {
	return !p.Lost
}

// Players holds exactly one record per role.
type Players struct {
	A Player
	B Player
}

// NewPlayers returns fresh records for both seats.
func NewPlayers(nameA, nameB string) Players {
	return Players{
		A: Player{Name: nameA, Role: RoleA},
		B: Player{Name: nameB, Role: RoleB},
	}
}

// Get returns a copy of the record for the role.
// RoleNone yields the zero Player.
func (p Players) Get(r Role) Player {
	switch r {
	case RoleA:
		return p.A
	case RoleB:
		return p.B
	default:
		return Player{}
	}
}

// Ref returns a pointer to the record for the role, or nil for RoleNone.
func (p *Players) Ref(r Role) *Player {
	switch r {
	case RoleA:
		return &p.A
	case RoleB:
		return &p.B
	default:
		return nil
	}
}

// AllReady reports whether both players have flagged ready.
func (p Players) AllReady() bool {
	return p.A.Ready && p.B.Ready
}
