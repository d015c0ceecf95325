// Package mods models the osu! gameplay modifiers as a bit-set.
//
// Bit positions follow the API v1 wire values. Combination rules of the
// service (Nightcore implies DoubleTime, Perfect implies SuddenDeath) are
// not enforced here; callers set both bits when they need them.
package mods

import "strings"

// Mods is a bitwise combination of gameplay modifiers.
type Mods uint32

// Named modifiers.
const (
	None        Mods = 0
	NoFail      Mods = 1 << 0
	Easy        Mods = 1 << 1
	TouchDevice Mods = 1 << 2
	Hidden      Mods = 1 << 3
	HardRock    Mods = 1 << 4
	SuddenDeath Mods = 1 << 5
	DoubleTime  Mods = 1 << 6
	Relax       Mods = 1 << 7
	HalfTime    Mods = 1 << 8
	// Nightcore is only sent along with DoubleTime, i.e. NC alone is 576.
	Nightcore  Mods = 1 << 9
	Flashlight Mods = 1 << 10
	Autoplay   Mods = 1 << 11
	SpunOut    Mods = 1 << 12
	// Relax2 is Autopilot.
	Relax2 Mods = 1 << 13
	// Perfect is only sent along with SuddenDeath, i.e. PF alone is 16416.
	Perfect Mods = 1 << 14
	Key4    Mods = 1 << 15
	Key5    Mods = 1 << 16
	Key6    Mods = 1 << 17
	Key7    Mods = 1 << 18
	Key8    Mods = 1 << 19
	FadeIn  Mods = 1 << 20
	Random  Mods = 1 << 21
	Cinema  Mods = 1 << 22
	Target  Mods = 1 << 23
	Key9    Mods = 1 << 24
	KeyCoop Mods = 1 << 25
	Key1    Mods = 1 << 26
	Key3    Mods = 1 << 27
	Key2    Mods = 1 << 28
	ScoreV2 Mods = 1 << 29
	Mirror  Mods = 1 << 30
)

// Composite masks.
const (
	KeyMod = Key1 | Key2 | Key3 | Key4 | Key5 | Key6 | Key7 | Key8 | Key9 | KeyCoop

	FreeModAllowed = NoFail | Easy | Hidden | HardRock | SuddenDeath | Flashlight |
		FadeIn | Relax | Relax2 | SpunOut | KeyMod

	ScoreIncreaseMods = Hidden | HardRock | DoubleTime | Flashlight | FadeIn
)

// acronyms lists the display order used by String.
var acronyms = []struct {
	mod  Mods
	name string
}{
	{NoFail, "NF"},
	{Easy, "EZ"},
	{TouchDevice, "TD"},
	{Hidden, "HD"},
	{HardRock, "HR"},
	{SuddenDeath, "SD"},
	{DoubleTime, "DT"},
	{Relax, "RX"},
	{HalfTime, "HT"},
	{Nightcore, "NC"},
	{Flashlight, "FL"},
	{Autoplay, "AT"},
	{SpunOut, "SO"},
	{Relax2, "AP"},
	{Perfect, "PF"},
	{Key1, "1K"},
	{Key2, "2K"},
	{Key3, "3K"},
	{Key4, "4K"},
	{Key5, "5K"},
	{Key6, "6K"},
	{Key7, "7K"},
	{Key8, "8K"},
	{Key9, "9K"},
	{KeyCoop, "CO"},
	{FadeIn, "FI"},
	{Random, "RD"},
	{Cinema, "CN"},
	{Target, "TP"},
	{ScoreV2, "V2"},
	{Mirror, "MR"},
}

// Has reports whether every bit of other is set in m.
func (m Mods) Has(other Mods) bool {
	return m&other == other
}

// String renders m as concatenated acronyms, e.g. "HDDT". A Nightcore set
// hides its implied DoubleTime and Perfect hides SuddenDeath, matching how
// the game displays them. The empty set renders as "NM".
func (m Mods) String() string {
	if m == None {
		return "NM"
	}
	hide := None
	if m.Has(Nightcore) {
		hide |= DoubleTime
	}
	if m.Has(Perfect) {
		hide |= SuddenDeath
	}

	var b strings.Builder
	for _, a := range acronyms {
		if m&a.mod != 0 && hide&a.mod == 0 {
			b.WriteString(a.name)
		}
	}
	return b.String()
}

// Parse converts a string of acronyms (case-insensitive, e.g. "hddt" or
// "HD,HR") back into Mods. Unknown tokens are reported via ok=false.
// NC and PF set their implied base bits, so Parse("NC") == Nightcore|DoubleTime.
func Parse(s string) (m Mods, ok bool) {
	s = strings.ToUpper(strings.NewReplacer(",", "", " ", "", "+", "").Replace(s))
	if s == "" || s == "NM" {
		return None, true
	}
	if len(s)%2 != 0 {
		return None, false
	}
	for i := 0; i < len(s); i += 2 {
		tok := s[i : i+2]
		found := false
		for _, a := range acronyms {
			if a.name == tok {
				m |= a.mod
				found = true
				break
			}
		}
		if !found {
			return None, false
		}
	}
	if m.Has(Nightcore) {
		m |= DoubleTime
	}
	if m.Has(Perfect) {
		m |= SuddenDeath
	}
	return m, true
}
