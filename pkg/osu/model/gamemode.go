// Package model contains the typed values returned by the osu! API v1 client.
// Fields mirror the service responses under ergonomic names.
package model

import (
	"strconv"
	"strings"
)

// Gamemode selects the ruleset a request is made for.
type Gamemode int

// Rulesets in wire order.
const (
	Standard Gamemode = iota
	Taiko
	CatchTheBeat
	Mania
)

var gamemodeNames = [...]string{"osu", "taiko", "fruits", "mania"}

// Valid reports whether g is one of the four known rulesets.
func (g Gamemode) Valid() bool {
	return g >= Standard && g <= Mania
}

func (g Gamemode) String() string {
	if !g.Valid() {
		return "Gamemode(" + strconv.Itoa(int(g)) + ")"
	}
	return gamemodeNames[g]
}

// ParseGamemode accepts a ruleset name ("osu", "taiko", "fruits"/"ctb",
// "mania") or its numeric wire value.
func ParseGamemode(s string) (Gamemode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "osu", "std", "standard":
		return Standard, true
	case "1", "taiko":
		return Taiko, true
	case "2", "fruits", "ctb", "catch":
		return CatchTheBeat, true
	case "3", "mania":
		return Mania, true
	}
	return 0, false
}
