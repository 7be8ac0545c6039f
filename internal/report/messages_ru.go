package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, KeyKindTank, "Танк")
	message.SetString(lang, KeyKindWarPlane, "Истребитель")
	message.SetString(lang, KeyKindWarship, "Корабль")
	message.SetString(lang, KeyKindInfantry, "Пехота")
	message.SetString(lang, KeyKindArtillery, "Артиллерия")

	message.SetString(lang, KeyStatus, "%d) Боец %s имеет %d здоровья и наносит %d урона.")
	message.SetString(lang, KeyAbilityHeader, "Особая способность боевой единицы: ")
	message.SetString(lang, KeyAbilityShells, "Имеет %d усиленных снаряда, наносящие урон в размере %d")
	message.SetString(lang, KeyAbilityEvasion, "Имеет шанс уклонения")
	message.SetString(lang, KeyTankShell, "Танк нанес урон %d усиленным снарядом")
	message.SetString(lang, KeyArtilleryShell, "Артиллерийское орудие нанесло урон %d усиленным снарядом")
	message.SetString(lang, KeyEvaded, "Истребитель увернулся")
	message.SetString(lang, KeyStalled, "Бойцы не смогли победить друг друга за %d раундов")
	message.SetString(lang, KeyDraw, "Ничья, победила дружба!")
	message.SetString(lang, KeyFirstWins, "Победил первый отряд!")
	message.SetString(lang, KeySecondWins, "Победил второй отряд!")
}
