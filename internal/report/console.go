// Package report renders battle events as localized console lines.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"warsim/internal/combat"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var kindKeys = map[string]string{
	combat.KindTank.String():      KeyKindTank,
	combat.KindWarPlane.String():  KeyKindWarPlane,
	combat.KindWarship.String():   KeyKindWarship,
	combat.KindInfantry.String():  KeyKindInfantry,
	combat.KindArtillery.String(): KeyKindArtillery,
}

// Console writes one or more lines per event. The first write error is kept
// and later events are dropped.
type Console struct {
	w   io.Writer
	p   *message.Printer
	err error
}

// NewConsole picks the closest supported locale to lang; English is the fallback.
func NewConsole(w io.Writer, lang string) (*Console, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	_, idx, _ := matcher.Match(tag)
	return &Console{w: w, p: message.NewPrinter(supported[idx])}, nil
}

func (c *Console) Err() error { return c.err }

func (c *Console) Handle(ev combat.Event) {
	if c.err != nil {
		return
	}
	switch ev.Type {
	case combat.EventRoster:
		c.status(ev.Payload)
		if bonus, ok := ev.Payload["ability_bonus"]; ok {
			c.line(c.p.Sprintf(KeyAbilityHeader) + c.p.Sprintf(KeyAbilityShells, intOf(ev.Payload["charges"]), intOf(bonus)))
		}
		if evades, _ := ev.Payload["evasion"].(bool); evades {
			c.line(c.p.Sprintf(KeyAbilityHeader) + c.p.Sprintf(KeyAbilityEvasion))
		}
	case combat.EventStatus:
		c.status(ev.Payload)
	case combat.EventEvade:
		c.line(c.p.Sprintf(KeyEvaded))
	case combat.EventAbility:
		key := KeyTankShell
		if ev.Payload["kind"] == combat.KindArtillery.String() {
			key = KeyArtilleryShell
		}
		c.line(c.p.Sprintf(key, intOf(ev.Payload["bonus"])))
	case combat.EventStalled:
		c.line(c.p.Sprintf(KeyStalled, intOf(ev.Payload["rounds"])))
	case combat.EventOutcome:
		switch combat.Outcome(fmt.Sprint(ev.Payload["outcome"])) {
		case combat.OutcomeFirst:
			c.line(c.p.Sprintf(KeyFirstWins))
		case combat.OutcomeSecond:
			c.line(c.p.Sprintf(KeySecondWins))
		default:
			c.line(c.p.Sprintf(KeyDraw))
		}
	}
}

// KindLabel is the localized name of a fighter kind.
func (c *Console) KindLabel(kind string) string {
	key, ok := kindKeys[kind]
	if !ok {
		return kind
	}
	return c.p.Sprintf(key)
}

func (c *Console) status(p map[string]any) {
	kind, _ := p["kind"].(string)
	c.line(c.p.Sprintf(KeyStatus, intOf(p["side"]), c.KindLabel(kind), intOf(p["health"]), intOf(p["damage"])))
}

func (c *Console) line(s string) {
	if _, err := io.WriteString(c.w, s+"\n"); err != nil {
		c.err = err
	}
}

func intOf(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
