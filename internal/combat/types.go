package combat

import (
	"fmt"
	"strings"
)

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventRoster  = "Roster"
	EventPairing = "Pairing"
	EventEvade   = "Evade"
	EventAbility = "Ability"
	EventStatus  = "Status"
	EventRemoved = "Removed"
	EventStalled = "Stalled"
	EventOutcome = "Outcome"
)

// Kind tags the five fighter variants.
type Kind int

const (
	KindTank Kind = iota
	KindWarPlane
	KindWarship
	KindInfantry
	KindArtillery
)

var kindNames = [...]string{
	KindTank:      "tank",
	KindWarPlane:  "warplane",
	KindWarship:   "warship",
	KindInfantry:  "infantry",
	KindArtillery: "artillery",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fighter kind %q", s)
}

type Fighter struct {
	ID         int // stable slot within the owning squad
	Kind       Kind
	Health     int
	BaseDamage int
	Damage     int
	Charges    int
}

func NewFighter(kind Kind, health, damage, charges int) *Fighter {
	return &Fighter{
		Kind:       kind,
		Health:     health,
		BaseDamage: damage,
		Damage:     damage,
		Charges:    charges,
	}
}

func (f *Fighter) Alive() bool { return f.Health > 0 }

// DisplayHealth is Health clamped at zero.
func (f *Fighter) DisplayHealth() int {
	if f.Health < 0 {
		return 0
	}
	return f.Health
}
