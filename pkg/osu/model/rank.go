package model

// Rank is the letter grade of a score.
type Rank string

// Grades, best first. The H variants are silver grades earned with
// Hidden or Flashlight.
const (
	RankXH Rank = "XH"
	RankX  Rank = "X"
	RankSH Rank = "SH"
	RankS  Rank = "S"
	RankA  Rank = "A"
	RankB  Rank = "B"
	RankC  Rank = "C"
	RankD  Rank = "D"
	RankF  Rank = "F"
)

// Valid reports whether r is one of the grades the service emits.
func (r Rank) Valid() bool {
	switch r {
	case RankXH, RankX, RankSH, RankS, RankA, RankB, RankC, RankD, RankF:
		return true
	}
	return false
}
