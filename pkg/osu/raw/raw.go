// Package raw holds the osu! API v1 wire schema and converts it into the
// typed values of package model.
//
// The service transmits every field as a JSON string. Each entity has one
// Normalize method forming the decode boundary. Normalizers are total:
// records that break the wire format (non-digit numbers, unknown date
// layouts) are out of contract and yield zero values instead of errors.
package raw

// Score mirrors a get_scores record.
type Score struct {
	ScoreID     *string `json:"score_id"`
	Score       string  `json:"score"`
	MaxCombo    string  `json:"maxcombo"`
	Count50     string  `json:"count50"`
	Count100    string  `json:"count100"`
	Count300    string  `json:"count300"`
	CountMiss   string  `json:"countmiss"`
	CountKatu   string  `json:"countkatu"`
	CountGeki   string  `json:"countgeki"`
	Perfect     string  `json:"perfect"`
	EnabledMods string  `json:"enabled_mods"`
	Username    string  `json:"username,omitempty"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	Rank        string  `json:"rank"`
	PP          string  `json:"pp,omitempty"`
	// ReplayAvailable is only sent by get_scores.
	ReplayAvailable string `json:"replay_available,omitempty"`
}

// UserScore mirrors a get_user_best or get_user_recent record.
type UserScore struct {
	BeatmapID string `json:"beatmap_id"`
	Score
}

// Event mirrors one entry of a get_user events array.
type Event struct {
	DisplayHTML  string `json:"display_html"`
	BeatmapID    string `json:"beatmap_id"`
	BeatmapsetID string `json:"beatmapset_id"`
	Date         string `json:"date"`
	EpicFactor   string `json:"epicfactor"`
}

// User mirrors a get_user record.
type User struct {
	UserID             string  `json:"user_id"`
	Username           string  `json:"username"`
	JoinDate           string  `json:"join_date"`
	Count300           string  `json:"count300"`
	Count100           string  `json:"count100"`
	Count50            string  `json:"count50"`
	PlayCount          string  `json:"playcount"`
	RankedScore        string  `json:"ranked_score"`
	TotalScore         string  `json:"total_score"`
	PPRank             string  `json:"pp_rank"`
	Level              string  `json:"level"`
	PPRaw              string  `json:"pp_raw"`
	Accuracy           string  `json:"accuracy"`
	CountRankSS        string  `json:"count_rank_ss"`
	CountRankSSH       string  `json:"count_rank_ssh"`
	CountRankS         string  `json:"count_rank_s"`
	CountRankSH        string  `json:"count_rank_sh"`
	CountRankA         string  `json:"count_rank_a"`
	Country            string  `json:"country"`
	TotalSecondsPlayed string  `json:"total_seconds_played"`
	PPCountryRank      string  `json:"pp_country_rank"`
	Events             []Event `json:"events"`
}
