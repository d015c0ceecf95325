package model

import "time"

// User is a player profile as returned by get_user for one ruleset.
// Hit and grade counts only cover ranked, approved and loved beatmaps.
type User struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	JoinDate time.Time `json:"joinDate"` // UTC
	Count300 int64     `json:"300"`
	Count100 int64     `json:"100"`
	Count50  int64     `json:"50"`
	// PlayCount only counts ranked, approved and loved beatmaps.
	PlayCount int64 `json:"playCount"`
	// RankedScore sums the best score on each ranked beatmap, TotalScore
	// sums every score.
	RankedScore int64   `json:"rankedScore"`
	TotalScore  int64   `json:"totalScore"`
	Rank        int64   `json:"rank"`
	Level       float64 `json:"level"`
	// PP is zero for inactive players so they drop off the leaderboards.
	PP       float64 `json:"pp"`
	Accuracy float64 `json:"accuracy"`
	CountSS  int64   `json:"ss"`
	CountSSH int64   `json:"ssh"`
	CountS   int64   `json:"s"`
	CountSH  int64   `json:"sh"`
	CountA   int64   `json:"a"`
	Country  Country `json:"country"`
	// TotalSecondsPlayed is the total play time across all beatmaps.
	TotalSecondsPlayed int64 `json:"totalSecondsPlayed"`
	CountryRank        int64 `json:"countryRank"`
	// Events is the activity feed in the order the service returned it.
	Events []Event `json:"events"`
}

// Event is one entry of a user's activity feed.
type Event struct {
	HTML         string `json:"html"`
	BeatmapID    string `json:"beatmapId"`
	BeatmapsetID string `json:"beatmapsetId"`
	// Date is kept verbatim as the service's UTC timestamp string.
	Date string `json:"date"`
	// EpicFactor rates how notable the event is, between 1 and 32.
	EpicFactor int `json:"epicFactor"`
}
