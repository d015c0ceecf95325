package raw

import (
	"strconv"
	"time"

	"github.com/okian/osuapi/pkg/osu/model"
	"github.com/okian/osuapi/pkg/osu/mods"
)

// DateLayout is the timestamp format used by API v1. Values are UTC.
const DateLayout = "2006-01-02 15:04:05"

// Normalize converts s into its typed form.
func (s Score) Normalize() model.Score {
	out := model.Score{
		ID:              s.ScoreID,
		Score:           parseInt64(s.Score),
		MaxCombo:        parseInt(s.MaxCombo),
		Count50:         parseInt(s.Count50),
		Count100:        parseInt(s.Count100),
		Count300:        parseInt(s.Count300),
		Miss:            parseInt(s.CountMiss),
		Katu:            parseInt(s.CountKatu),
		Geki:            parseInt(s.CountGeki),
		Perfect:         s.Perfect == "1",
		Mods:            mods.Mods(parseUint32(s.EnabledMods)),
		Username:        s.Username,
		UserID:          s.UserID,
		Date:            parseDate(s.Date),
		Rank:            model.Rank(s.Rank),
		ReplayAvailable: s.ReplayAvailable == "1",
	}
	if s.PP != "" {
		pp := parseFloat(s.PP)
		out.PP = &pp
	}
	return out
}

// Normalize converts s into its typed form, keeping the beatmap id.
func (s UserScore) Normalize() model.UserScore {
	return model.UserScore{
		BeatmapID: s.BeatmapID,
		Score:     s.Score.Normalize(),
	}
}

// Normalize converts e into its typed form. The date stays a string.
func (e Event) Normalize() model.Event {
	return model.Event{
		HTML:         e.DisplayHTML,
		BeatmapID:    e.BeatmapID,
		BeatmapsetID: e.BeatmapsetID,
		Date:         e.Date,
		EpicFactor:   parseInt(e.EpicFactor),
	}
}

// Normalize converts u into its typed form. Events keep service order.
func (u User) Normalize() model.User {
	events := make([]model.Event, len(u.Events))
	for i, e := range u.Events {
		events[i] = e.Normalize()
	}
	return model.User{
		ID:                 u.UserID,
		Username:           u.Username,
		JoinDate:           parseDate(u.JoinDate),
		Count300:           parseInt64(u.Count300),
		Count100:           parseInt64(u.Count100),
		Count50:            parseInt64(u.Count50),
		PlayCount:          parseInt64(u.PlayCount),
		RankedScore:        parseInt64(u.RankedScore),
		TotalScore:         parseInt64(u.TotalScore),
		Rank:               parseInt64(u.PPRank),
		Level:              parseFloat(u.Level),
		PP:                 parseFloat(u.PPRaw),
		Accuracy:           parseFloat(u.Accuracy),
		CountSS:            parseInt64(u.CountRankSS),
		CountSSH:           parseInt64(u.CountRankSSH),
		CountS:             parseInt64(u.CountRankS),
		CountSH:            parseInt64(u.CountRankSH),
		CountA:             parseInt64(u.CountRankA),
		Country:            model.Country(u.Country),
		TotalSecondsPlayed: parseInt64(u.TotalSecondsPlayed),
		CountryRank:        parseInt64(u.PPCountryRank),
		Events:             events,
	}
}

// NormalizeScores converts a get_scores response.
func NormalizeScores(in []Score) []model.Score {
	out := make([]model.Score, len(in))
	for i, s := range in {
		out[i] = s.Normalize()
	}
	return out
}

// NormalizeUserScores converts a get_user_best or get_user_recent response.
func NormalizeUserScores(in []UserScore) []model.UserScore {
	out := make([]model.UserScore, len(in))
	for i, s := range in {
		out[i] = s.Normalize()
	}
	return out
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseUint32(s string) uint32 {
	n, _ := strconv.ParseUint(s, 10, 32)
	return uint32(n)
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseDate(s string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, s, time.UTC)
	return t
}
