package report

// Message keys registered per locale in messages_*.go.
const (
	KeyKindTank      = "kind.tank"
	KeyKindWarPlane  = "kind.warplane"
	KeyKindWarship   = "kind.warship"
	KeyKindInfantry  = "kind.infantry"
	KeyKindArtillery = "kind.artillery"

	KeyStatus         = "battle.status"
	KeyAbilityHeader  = "battle.ability.header"
	KeyAbilityShells  = "battle.ability.shells"
	KeyAbilityEvasion = "battle.ability.evasion"
	KeyTankShell      = "battle.tank.shell"
	KeyArtilleryShell = "battle.artillery.shell"
	KeyEvaded         = "battle.evaded"
	KeyStalled        = "battle.stalled"
	KeyDraw           = "battle.outcome.draw"
	KeyFirstWins      = "battle.outcome.first"
	KeySecondWins     = "battle.outcome.second"
)
