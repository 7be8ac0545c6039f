package combat

import "warsim/internal/util"

// Ability is a charge-limited damage boost that fires at or below MinHealth.
type Ability struct {
	MinHealth int
	Bonus     int
	Cost      int
}

var abilityBook = map[Kind]Ability{
	KindTank:      {MinHealth: 800, Bonus: 200, Cost: 1},
	KindArtillery: {MinHealth: 500, Bonus: 400, Cost: 1},
}

// WarPlane evasion roll: uniform in [evadeMin, evadeMax), evaded above evadeThreshold.
const (
	evadeMin       = 1
	evadeMax       = 11
	evadeThreshold = 5
)

// AbilityOf reports the low-health ability of a variant, if it has one.
func AbilityOf(k Kind) (Ability, bool) {
	ab, ok := abilityBook[k]
	return ab, ok
}

func (k Kind) Evades() bool { return k == KindWarPlane }

// Attack applies f's current damage to target. A WarPlane rolls first and
// deals nothing when the roll is above the threshold; Attack then returns false.
func (f *Fighter) Attack(target *Fighter, rng util.Source) bool {
	if f.Kind.Evades() && rng.IntRange(evadeMin, evadeMax) > evadeThreshold {
		return false
	}
	target.takeDamage(f.Damage)
	return true
}

// takeDamage never clamps; Health may go negative.
func (f *Fighter) takeDamage(amount int) {
	f.Health -= amount
}

func (f *Fighter) TryUseAbility(minHealth, bonus, cost int) bool {
	if f.Health <= minHealth && f.Charges >= cost {
		f.Charges -= cost
		f.Damage += bonus
		return true
	}
	return false
}

// UseAbility runs once per round after both attacks. Variants with an ability
// drop back to base damage and then try to fire it again; the rest do nothing.
func (f *Fighter) UseAbility() bool {
	ab, ok := abilityBook[f.Kind]
	if !ok {
		return false
	}
	f.Damage = f.BaseDamage
	return f.TryUseAbility(ab.MinHealth, ab.Bonus, ab.Cost)
}
