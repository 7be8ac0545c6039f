package combat

import (
	"errors"
	"testing"

	"warsim/internal/config"
)

func defaultFactory(t *testing.T) *SquadFactory {
	t.Helper()
	rc, err := config.DefaultRoster()
	if err != nil {
		t.Fatalf("DefaultRoster: %v", err)
	}
	sf, err := NewSquadFactory(rc)
	if err != nil {
		t.Fatalf("NewSquadFactory: %v", err)
	}
	return sf
}

func TestCreateSquadRoster(t *testing.T) {
	sq := defaultFactory(t).CreateSquad()
	want := []struct {
		kind    Kind
		health  int
		damage  int
		charges int
	}{
		{KindTank, 1000, 100, 2},
		{KindWarPlane, 500, 200, 1},
		{KindWarship, 1500, 150, 2},
		{KindInfantry, 300, 50, 4},
		{KindArtillery, 500, 250, 1},
	}
	got := sq.Fighters()
	if len(got) != len(want) {
		t.Fatalf("fighters = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		f := got[i]
		if f.ID != i || f.Kind != w.kind || f.Health != w.health || f.BaseDamage != w.damage || f.Damage != w.damage || f.Charges != w.charges {
			t.Fatalf("fighter %d = %+v, want %+v", i, *f, w)
		}
	}
}

func TestCreateSquadIsIndependent(t *testing.T) {
	sf := defaultFactory(t)
	a, b := sf.CreateSquad(), sf.CreateSquad()
	a.Fighters()[0].takeDamage(500)
	if b.Fighters()[0].Health != 1000 {
		t.Fatal("squads share fighter records")
	}
}

func TestNewSquadFactoryErrors(t *testing.T) {
	if _, err := NewSquadFactory(nil); !errors.Is(err, ErrEmptySquad) {
		t.Fatalf("err = %v, want ErrEmptySquad", err)
	}
	rc := &config.RosterConfig{Fighters: []config.FighterDef{{Kind: "submarine", Health: 1, Damage: 1}}}
	if _, err := NewSquadFactory(rc); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRemoveDeadFighter(t *testing.T) {
	sq := defaultFactory(t).CreateSquad()
	infantry := sq.Fighters()[3]

	if sq.RemoveDeadFighter(infantry) {
		t.Fatal("removed a living fighter")
	}
	if sq.Len() != 5 {
		t.Fatalf("len = %d, want 5", sq.Len())
	}

	infantry.takeDamage(infantry.Health)
	if !sq.RemoveDeadFighter(infantry) {
		t.Fatal("dead fighter was not removed")
	}
	if sq.Len() != 4 {
		t.Fatalf("len = %d, want 4", sq.Len())
	}
	if sq.RemoveDeadFighter(infantry) || sq.Len() != 4 {
		t.Fatalf("second removal changed the squad, len = %d", sq.Len())
	}
	for _, f := range sq.Fighters() {
		if f == infantry {
			t.Fatal("removed fighter still listed")
		}
	}
}

func TestRemoveDeadFighterByIdentity(t *testing.T) {
	sf := defaultFactory(t)
	a, b := sf.CreateSquad(), sf.CreateSquad()
	stranger := b.Fighters()[0]
	stranger.takeDamage(5000)
	if a.RemoveDeadFighter(stranger) {
		t.Fatal("removed a fighter from another squad")
	}
	if a.Len() != 5 {
		t.Fatalf("len = %d, want 5", a.Len())
	}
}

func TestSlotsStayStable(t *testing.T) {
	sq := defaultFactory(t).CreateSquad()
	first := sq.Fighters()[0]
	first.takeDamage(first.Health)
	sq.RemoveDeadFighter(first)

	if sq.Slots() != 5 {
		t.Fatalf("slots = %d, want 5", sq.Slots())
	}
	if f, ok := sq.Slot(0); ok || f != first {
		t.Fatalf("slot 0 = %v, %v; want excised tank", f, ok)
	}
	if f, ok := sq.Slot(1); !ok || f.Kind != KindWarPlane {
		t.Fatalf("slot 1 = %v, %v; want live warplane", f, ok)
	}
	if sq.Fighters()[0].Kind != KindWarPlane {
		t.Fatalf("live view starts with %s, want warplane", sq.Fighters()[0].Kind)
	}
	if _, ok := sq.Slot(5); ok {
		t.Fatal("slot 5 should not exist")
	}
}
