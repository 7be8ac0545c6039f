package combat

import (
	"errors"
	"fmt"

	"warsim/internal/config"
)

var ErrEmptySquad = errors.New("squad has no fighters")

// Squad keeps its fighters in fixed slots. Removing a fighter marks the slot
// excised; slots never shift.
type Squad struct {
	slots   []*Fighter
	removed []bool
	live    int
}

func NewSquad(fighters []*Fighter) *Squad {
	s := &Squad{
		slots:   make([]*Fighter, len(fighters)),
		removed: make([]bool, len(fighters)),
		live:    len(fighters),
	}
	copy(s.slots, fighters)
	for i, f := range s.slots {
		f.ID = i
	}
	return s
}

// Fighters lists the members still in the squad, in insertion order.
func (s *Squad) Fighters() []*Fighter {
	out := make([]*Fighter, 0, s.live)
	for i, f := range s.slots {
		if !s.removed[i] {
			out = append(out, f)
		}
	}
	return out
}

func (s *Squad) Len() int   { return s.live }
func (s *Squad) Slots() int { return len(s.slots) }

// Slot returns the fighter created at slot i and whether it is still listed.
func (s *Squad) Slot(i int) (*Fighter, bool) {
	if i < 0 || i >= len(s.slots) {
		return nil, false
	}
	return s.slots[i], !s.removed[i]
}

// RemoveDeadFighter excises f if it belongs to the squad and is dead.
func (s *Squad) RemoveDeadFighter(f *Fighter) bool {
	if f == nil || f.Alive() {
		return false
	}
	for i, m := range s.slots {
		if m == f && !s.removed[i] {
			s.removed[i] = true
			s.live--
			return true
		}
	}
	return false
}

type rosterEntry struct {
	kind    Kind
	health  int
	damage  int
	charges int
}

// SquadFactory stamps out identical squads from one roster.
type SquadFactory struct {
	roster []rosterEntry
}

func NewSquadFactory(rc *config.RosterConfig) (*SquadFactory, error) {
	if rc == nil || len(rc.Fighters) == 0 {
		return nil, ErrEmptySquad
	}
	sf := &SquadFactory{roster: make([]rosterEntry, 0, len(rc.Fighters))}
	for i, def := range rc.Fighters {
		kind, err := ParseKind(def.Kind)
		if err != nil {
			return nil, fmt.Errorf("roster fighter %d: %w", i, err)
		}
		sf.roster = append(sf.roster, rosterEntry{
			kind:    kind,
			health:  def.Health,
			damage:  def.Damage,
			charges: def.Charges,
		})
	}
	return sf, nil
}

func (sf *SquadFactory) CreateSquad() *Squad {
	fighters := make([]*Fighter, len(sf.roster))
	for i, e := range sf.roster {
		fighters[i] = NewFighter(e.kind, e.health, e.damage, e.charges)
	}
	return NewSquad(fighters)
}
