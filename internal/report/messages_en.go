package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KeyKindTank, "Tank")
	message.SetString(lang, KeyKindWarPlane, "Fighter jet")
	message.SetString(lang, KeyKindWarship, "Warship")
	message.SetString(lang, KeyKindInfantry, "Infantry")
	message.SetString(lang, KeyKindArtillery, "Artillery")

	message.SetString(lang, KeyStatus, "%d) Fighter %s has %d health and deals %d damage.")
	message.SetString(lang, KeyAbilityHeader, "Special ability of the unit: ")
	message.SetString(lang, KeyAbilityShells, "Has %d reinforced shell(s) dealing %d extra damage")
	message.SetString(lang, KeyAbilityEvasion, "Has a chance to evade")
	message.SetString(lang, KeyTankShell, "The tank dealt %d extra damage with a reinforced shell")
	message.SetString(lang, KeyArtilleryShell, "The artillery gun dealt %d extra damage with a reinforced shell")
	message.SetString(lang, KeyEvaded, "The fighter jet evaded")
	message.SetString(lang, KeyStalled, "Neither fighter could finish the other in %d rounds")
	message.SetString(lang, KeyDraw, "It's a draw, friendship wins!")
	message.SetString(lang, KeyFirstWins, "The first squad wins!")
	message.SetString(lang, KeySecondWins, "The second squad wins!")
}
