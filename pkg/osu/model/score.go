package model

import (
	"time"

	"github.com/okian/osuapi/pkg/osu/mods"
)

// Score is a single play as returned by get_scores.
type Score struct {
	ID       *string `json:"id"` // nil when the service has no score id
	Score    int64   `json:"score"`
	MaxCombo int     `json:"maxCombo"`
	Count50  int     `json:"50"`
	Count100 int     `json:"100"`
	Count300 int     `json:"300"`
	Miss     int     `json:"miss"`
	Katu     int     `json:"katu"`
	Geki     int     `json:"geki"`
	// Perfect is set when the maximum combo of the map was reached.
	Perfect         bool      `json:"perfect"`
	Mods            mods.Mods `json:"mods"`
	Username        string    `json:"username,omitempty"`
	UserID          string    `json:"userId"`
	Date            time.Time `json:"date"` // UTC
	Rank            Rank      `json:"rank"`
	PP              *float64  `json:"pp,omitempty"` // 4 decimals; nil when not awarded
	ReplayAvailable bool      `json:"replayAvailable"`
}

// UserScore is a Score from get_user_best or get_user_recent, which also
// identify the beatmap the play was made on.
type UserScore struct {
	BeatmapID string `json:"beatmapId"`
	Score
}
