package combat

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warsim/internal/util"
)

type Side int

const (
	SideFirst  Side = 1
	SideSecond Side = 2
)

type Outcome string

const (
	OutcomeDraw   Outcome = "draw"
	OutcomeFirst  Outcome = "first"
	OutcomeSecond Outcome = "second"
)

type Result struct {
	ID              string  `json:"id"`
	Seed            int64   `json:"seed"`
	Outcome         Outcome `json:"outcome"`
	FirstSurvivors  int     `json:"first_survivors"`
	SecondSurvivors int     `json:"second_survivors"`
	Pairings        int     `json:"pairings"`
	Rounds          int     `json:"rounds"`
	Stalled         int     `json:"stalled,omitempty"`
	Events          []Event `json:"events,omitempty"`
}

type Env struct {
	Rng util.Source
	Log *zap.Logger
	// MaxRounds caps the exchanges of one pairing; 0 leaves it unbounded.
	MaxRounds int
	round     int
}

// Run builds two squads from the factory and fights them out.
func Run(env *Env, sf *SquadFactory, emit func(Event), record bool) (Result, error) {
	return Fight(env, sf.CreateSquad(), sf.CreateSquad(), emit, record)
}

// Fight walks the first squad's live members by index and pairs each with a
// random opponent from the second squad. A pairing lasts until one of its
// fighters dies; dead fighters are removed once the pairing is over, and the
// walk stops when the index reaches the size of the smaller live squad. The
// side with more fighters left wins.
//
// The opponent is drawn from [1, len(second)), so the second squad's leading
// live fighter is only picked when it is the last one standing.
func Fight(env *Env, first, second *Squad, emit func(Event), record bool) (Result, error) {
	if first.Len() == 0 || second.Len() == 0 {
		return Result{}, ErrEmptySquad
	}
	env.round = 0
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}

	var events []Event
	send := func(ev Event) {
		if record {
			events = append(events, ev)
		}
		if emit != nil {
			emit(ev)
		}
	}

	for _, f := range first.Fighters() {
		send(Event{Type: EventRoster, Payload: rosterPayload(SideFirst, f)})
	}
	for _, f := range second.Fighters() {
		send(Event{Type: EventRoster, Payload: rosterPayload(SideSecond, f)})
	}

	res := Result{ID: uuid.NewString()}
	for i := 0; i < first.Len() && i < second.Len(); i++ {
		a := first.Fighters()[i]
		opponents := second.Fighters()
		idx := pickOpponent(env.Rng, len(opponents))
		b := opponents[idx]
		res.Pairings++

		send(Event{Round: env.round, Type: EventPairing, Payload: map[string]any{
			"first": a.ID, "first_kind": a.Kind.String(),
			"second": b.ID, "second_kind": b.Kind.String(),
		}})
		log.Debug("pairing",
			zap.Int("first_slot", a.ID), zap.String("first_kind", a.Kind.String()),
			zap.Int("second_slot", b.ID), zap.String("second_kind", b.Kind.String()),
			zap.Int("opponent_index", idx))

		rounds := 0
		for a.Alive() && b.Alive() {
			if env.MaxRounds > 0 && rounds >= env.MaxRounds {
				res.Stalled++
				send(Event{Round: env.round, Type: EventStalled, Payload: map[string]any{
					"first": a.ID, "second": b.ID, "rounds": rounds,
				}})
				log.Warn("pairing stalled",
					zap.Int("first_slot", a.ID), zap.Int("second_slot", b.ID), zap.Int("rounds", rounds))
				break
			}
			env.round++
			rounds++
			exchange(env, log, SideFirst, a, b, send)
			exchange(env, log, SideSecond, b, a, send)
			useAbility(env, log, SideFirst, a, send)
			useAbility(env, log, SideSecond, b, send)
			send(Event{Round: env.round, Type: EventStatus, Payload: statusPayload(SideFirst, a)})
			send(Event{Round: env.round, Type: EventStatus, Payload: statusPayload(SideSecond, b)})
		}

		if first.RemoveDeadFighter(a) {
			send(Event{Round: env.round, Type: EventRemoved, Payload: statusPayload(SideFirst, a)})
			log.Debug("removed", zap.Int("side", int(SideFirst)), zap.Int("slot", a.ID))
		}
		if second.RemoveDeadFighter(b) {
			send(Event{Round: env.round, Type: EventRemoved, Payload: statusPayload(SideSecond, b)})
			log.Debug("removed", zap.Int("side", int(SideSecond)), zap.Int("slot", b.ID))
		}
	}

	res.Rounds = env.round
	res.FirstSurvivors = first.Len()
	res.SecondSurvivors = second.Len()
	res.Outcome = DetermineWinner(first, second)
	send(Event{Round: env.round, Type: EventOutcome, Payload: map[string]any{
		"outcome": string(res.Outcome), "first": res.FirstSurvivors, "second": res.SecondSurvivors,
	}})
	log.Info("battle finished",
		zap.String("id", res.ID), zap.String("outcome", string(res.Outcome)),
		zap.Int("first", res.FirstSurvivors), zap.Int("second", res.SecondSurvivors),
		zap.Int("rounds", res.Rounds))

	if record {
		res.Events = events
	}
	return res, nil
}

func DetermineWinner(first, second *Squad) Outcome {
	switch {
	case first.Len() > second.Len():
		return OutcomeFirst
	case second.Len() > first.Len():
		return OutcomeSecond
	default:
		return OutcomeDraw
	}
}

// pickOpponent draws from [1, n) and clamps the result into [0, n).
func pickOpponent(rng util.Source, n int) int {
	if n <= 1 {
		return 0
	}
	idx := rng.IntRange(1, n)
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func exchange(env *Env, log *zap.Logger, side Side, attacker, target *Fighter, send func(Event)) {
	if attacker.Attack(target, env.Rng) {
		return
	}
	send(Event{Round: env.round, Type: EventEvade, Payload: map[string]any{
		"side": int(side), "slot": attacker.ID, "kind": attacker.Kind.String(),
	}})
	log.Debug("evaded", zap.Int("side", int(side)), zap.Int("slot", attacker.ID))
}

func useAbility(env *Env, log *zap.Logger, side Side, f *Fighter, send func(Event)) {
	if !f.UseAbility() {
		return
	}
	ab, _ := AbilityOf(f.Kind)
	send(Event{Round: env.round, Type: EventAbility, Payload: map[string]any{
		"side": int(side), "slot": f.ID, "kind": f.Kind.String(),
		"bonus": ab.Bonus, "charges": f.Charges,
	}})
	log.Debug("ability",
		zap.Int("side", int(side)), zap.Int("slot", f.ID), zap.String("kind", f.Kind.String()),
		zap.Int("damage", f.Damage), zap.Int("charges", f.Charges))
}

func statusPayload(side Side, f *Fighter) map[string]any {
	return map[string]any{
		"side": int(side), "slot": f.ID, "kind": f.Kind.String(),
		"health": f.DisplayHealth(), "damage": f.Damage,
	}
}

func rosterPayload(side Side, f *Fighter) map[string]any {
	p := statusPayload(side, f)
	p["charges"] = f.Charges
	if ab, ok := AbilityOf(f.Kind); ok {
		p["ability_bonus"] = ab.Bonus
	}
	if f.Kind.Evades() {
		p["evasion"] = true
	}
	return p
}

func MarshalPretty(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return b, nil
}
