package bracket

import (
	"math/bits"
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-rankings/internal/domain/season"
)

// MatchID addresses a match inside its bracket.
type MatchID int

// slot is a match input: either a fixed participant or the winner of an earlier match.
type slot struct {
	fixed Participant
	from  MatchID
	fed   bool
}

func (s slot) isBye() bool {
	return !s.fed && s.fixed.IsBye()
}

type match struct {
	round  int
	left   slot
	right  slot
	winner Participant
	loser  Participant
}

// Pairing is a read-only view of one match.
type Pairing struct {
	ID     MatchID
	Round  int
	Left   Participant
	Right  Participant
	Winner Participant
	Loser  Participant
}

// Placement is the final position of one team inside a bracket.
type Placement struct {
	Team            string
	Place           int
	EliminatedRound int
}

// Bracket is a single-elimination tournament stored as an arena of matches.
// Later matches refer to earlier ones by index, never by pointer.
type Bracket struct {
	seeds    []string
	seedRank map[string]int
	byes     int
	rounds   int
	matches  []match
	champion slot
}

// Build creates a bracket from teams ordered best seed first. The field is padded
// with byes to the next power of two and paired 1 vs N, 2 vs N-1, and so on.
func Build(seeds []string) (*Bracket, error) {
	if len(seeds) < 2 {
		return nil, crerr.Wrapf(season.ErrConfiguration, "bracket needs at least 2 teams, got %d", len(seeds))
	}

	seedRank := make(map[string]int, len(seeds))
	for i, team := range seeds {
		if team == "" {
			return nil, crerr.Wrapf(season.ErrConfiguration, "empty team key at seed %d", i+1)
		}
		if _, dup := seedRank[team]; dup {
			return nil, crerr.Wrapf(season.ErrConfiguration, "duplicate team %s in bracket seeds", team)
		}
		seedRank[team] = i + 1
	}

	size := nextPowerOfTwo(len(seeds))
	b := &Bracket{
		seeds:    append([]string(nil), seeds...),
		seedRank: seedRank,
		byes:     size - len(seeds),
		matches:  make([]match, 0, len(seeds)-1),
	}

	current := make([]slot, size)
	for i := range current {
		if i < len(seeds) {
			current[i] = slot{fixed: ResolvedParticipant(seeds[i])}
			continue
		}
		current[i] = slot{fixed: ByeParticipant()}
	}

	round := 1
	for len(current) > 1 {
		half := len(current) / 2
		next := make([]slot, 0, half)
		for i := 0; i < half; i++ {
			top, bottom := current[i], current[len(current)-1-i]
			switch {
			case bottom.isBye():
				next = append(next, top)
			case top.isBye():
				next = append(next, bottom)
			default:
				id := MatchID(len(b.matches))
				b.matches = append(b.matches, match{round: round, left: top, right: bottom})
				next = append(next, slot{from: id, fed: true})
			}
		}
		current = next
		round++
	}

	b.rounds = round - 1
	b.champion = current[0]
	return b, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func (b *Bracket) Seeds() []string {
	return append([]string(nil), b.seeds...)
}

// Byes is the number of padding slots added to reach a power of two.
func (b *Bracket) Byes() int {
	return b.byes
}

func (b *Bracket) Rounds() int {
	return b.rounds
}

// Seed returns the 1-based seed of team inside this bracket.
func (b *Bracket) Seed(team string) (int, bool) {
	seed, ok := b.seedRank[team]
	return seed, ok
}

func (b *Bracket) resolve(s slot) Participant {
	if s.fed {
		return b.matches[s.from].winner
	}
	return s.fixed
}

func (b *Bracket) pairing(id MatchID) Pairing {
	m := b.matches[id]
	return Pairing{
		ID:     id,
		Round:  m.round,
		Left:   b.resolve(m.left),
		Right:  b.resolve(m.right),
		Winner: m.winner,
		Loser:  m.loser,
	}
}

// Matches returns every match in creation order (round by round).
func (b *Bracket) Matches() []Pairing {
	out := make([]Pairing, 0, len(b.matches))
	for i := range b.matches {
		out = append(out, b.pairing(MatchID(i)))
	}
	return out
}

// ActiveMatches returns the matches whose two participants are known and
// whose winner is not yet set.
func (b *Bracket) ActiveMatches() []Pairing {
	out := make([]Pairing, 0, len(b.matches))
	for i := range b.matches {
		p := b.pairing(MatchID(i))
		if p.Left.IsResolved() && p.Right.IsResolved() && !p.Winner.IsResolved() {
			out = append(out, p)
		}
	}
	return out
}

// ActiveMatchFor returns the active match team is playing in, if any.
func (b *Bracket) ActiveMatchFor(team string) (Pairing, bool) {
	for _, p := range b.ActiveMatches() {
		left, _ := p.Left.Team()
		right, _ := p.Right.Team()
		if left == team || right == team {
			return p, true
		}
	}
	return Pairing{}, false
}

// SetWinner decides match id. The winner must be one of the two participants
// and a decided match cannot be changed.
func (b *Bracket) SetWinner(id MatchID, team string) error {
	if id < 0 || int(id) >= len(b.matches) {
		return crerr.Wrapf(ErrInvalidTransition, "unknown match id %d", id)
	}

	p := b.pairing(id)
	if p.Winner.IsResolved() {
		return crerr.Wrapf(ErrInvalidTransition, "match %d already decided", id)
	}
	left, leftOK := p.Left.Team()
	right, rightOK := p.Right.Team()
	if !leftOK || !rightOK {
		return crerr.Wrapf(ErrInvalidTransition, "match %d is not ready", id)
	}

	m := &b.matches[id]
	switch team {
	case left:
		m.winner = ResolvedParticipant(left)
		m.loser = ResolvedParticipant(right)
	case right:
		m.winner = ResolvedParticipant(right)
		m.loser = ResolvedParticipant(left)
	default:
		return crerr.Wrapf(ErrInvalidTransition, "team %s is not in match %d (%s vs %s)", team, id, left, right)
	}
	return nil
}

// Complete reports whether every match has a winner.
func (b *Bracket) Complete() bool {
	for _, m := range b.matches {
		if !m.winner.IsResolved() {
			return false
		}
	}
	return true
}

// Champion returns the bracket winner once the final is decided.
func (b *Bracket) Champion() (string, bool) {
	return b.resolve(b.champion).Team()
}

// Placements orders every team: the champion first, then losers by the round
// they were eliminated in, later rounds first, better seed first within a round.
func (b *Bracket) Placements() ([]Placement, error) {
	if !b.Complete() {
		return nil, crerr.Wrapf(ErrIncomplete, "%d of %d matches still open", len(b.ActiveMatches())+b.pending(), len(b.matches))
	}
	champion, ok := b.Champion()
	if !ok {
		return nil, crerr.Wrap(ErrIncomplete, "champion unresolved")
	}

	out := make([]Placement, 0, len(b.seeds))
	out = append(out, Placement{Team: champion, Place: 1})

	losers := make([]Placement, 0, len(b.matches))
	for _, m := range b.matches {
		team, _ := m.loser.Team()
		losers = append(losers, Placement{Team: team, EliminatedRound: m.round})
	}
	sort.SliceStable(losers, func(i, j int) bool {
		if losers[i].EliminatedRound != losers[j].EliminatedRound {
			return losers[i].EliminatedRound > losers[j].EliminatedRound
		}
		return b.seedRank[losers[i].Team] < b.seedRank[losers[j].Team]
	})
	for i := range losers {
		losers[i].Place = i + 2
		out = append(out, losers[i])
	}
	return out, nil
}

func (b *Bracket) pending() int {
	count := 0
	for i := range b.matches {
		p := b.pairing(MatchID(i))
		if !p.Winner.IsResolved() && !(p.Left.IsResolved() && p.Right.IsResolved()) {
			count++
		}
	}
	return count
}
