package bracket

// State tells what a bracket slot currently holds.
type State uint8

const (
	Unresolved State = iota
	Bye
	Resolved
)

func (s State) String() string {
	switch s {
	case Bye:
		return "bye"
	case Resolved:
		return "resolved"
	default:
		return "unresolved"
	}
}

// Participant is a bracket slot: unresolved, a bye, or bound to one team.
// Values are immutable; a slot changes by being replaced once, never rebound.
type Participant struct {
	state State
	team  string
}

func ResolvedParticipant(team string) Participant {
	return Participant{state: Resolved, team: team}
}

func ByeParticipant() Participant {
	return Participant{state: Bye}
}

func (p Participant) State() State {
	return p.state
}

func (p Participant) IsResolved() bool {
	return p.state == Resolved
}

func (p Participant) IsBye() bool {
	return p.state == Bye
}

// Team returns the bound team key, or false while unresolved or a bye.
func (p Participant) Team() (string, bool) {
	if p.state != Resolved {
		return "", false
	}
	return p.team, true
}
