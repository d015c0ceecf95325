package raw_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okian/osuapi/pkg/osu/mods"
	"github.com/okian/osuapi/pkg/osu/model"
	"github.com/okian/osuapi/pkg/osu/raw"
	. "github.com/smartystreets/goconvey/convey"
)

const scoresJSON = `[
  {
    "score_id": null,
    "score": "1000000",
    "maxcombo": "500",
    "count50": "1",
    "count100": "2",
    "count300": "300",
    "countmiss": "0",
    "countkatu": "1",
    "countgeki": "2",
    "perfect": "1",
    "enabled_mods": "24",
    "user_id": "7",
    "date": "2018-01-01 00:00:00",
    "rank": "S"
  },
  {
    "score_id": "2177560145",
    "score": "132408001",
    "username": "Cookiezi",
    "maxcombo": "2385",
    "count50": "0",
    "count100": "3",
    "count300": "1783",
    "countmiss": "0",
    "countkatu": "2",
    "countgeki": "279",
    "perfect": "1",
    "enabled_mods": "16504",
    "user_id": "124493",
    "date": "2013-06-22 09:24:17",
    "rank": "XH",
    "pp": "245.8765",
    "replay_available": "1"
  }
]`

func TestScoreNormalize(t *testing.T) {
	Convey("Given a get_scores response", t, func() {
		var in []raw.Score
		So(json.Unmarshal([]byte(scoresJSON), &in), ShouldBeNil)
		So(in, ShouldHaveLength, 2)

		out := raw.NormalizeScores(in)
		So(out, ShouldHaveLength, 2)

		Convey("When the record has a null id, no pp and no replay flag", func() {
			s := out[0]

			Convey("Then it should normalize to the expected typed score", func() {
				expected := model.Score{
					ID:              nil,
					Score:           1000000,
					MaxCombo:        500,
					Count50:         1,
					Count100:        2,
					Count300:        300,
					Miss:            0,
					Katu:            1,
					Geki:            2,
					Perfect:         true,
					Mods:            mods.Mods(24),
					UserID:          "7",
					Date:            time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
					Rank:            model.RankS,
					PP:              nil,
					ReplayAvailable: false,
				}
				So(s, ShouldResemble, expected)
			})

			Convey("Then the date should be UTC", func() {
				So(s.Date.Location(), ShouldEqual, time.UTC)
			})
		})

		Convey("When the record carries every optional field", func() {
			s := out[1]

			Convey("Then the optional fields should be kept", func() {
				So(s.ID, ShouldNotBeNil)
				So(*s.ID, ShouldEqual, "2177560145")
				So(s.Username, ShouldEqual, "Cookiezi")
				So(s.PP, ShouldNotBeNil)
				So(*s.PP, ShouldEqual, 245.8765)
				So(s.ReplayAvailable, ShouldBeTrue)
				So(s.Rank, ShouldEqual, model.RankXH)
			})

			Convey("Then the mods should decode to HD|HR|PF|SD", func() {
				So(s.Mods, ShouldEqual, mods.Hidden|mods.HardRock|mods.SuddenDeath|mods.Perfect)
			})
		})
	})
}

func TestScoreNormalizeFlags(t *testing.T) {
	Convey("Given raw scores with different flag values", t, func() {
		Convey("When perfect is 0", func() {
			s := raw.Score{Perfect: "0", ReplayAvailable: "0"}.Normalize()
			So(s.Perfect, ShouldBeFalse)
			So(s.ReplayAvailable, ShouldBeFalse)
		})

		Convey("When perfect and replay_available are absent", func() {
			s := raw.Score{}.Normalize()
			So(s.Perfect, ShouldBeFalse)
			So(s.ReplayAvailable, ShouldBeFalse)
			So(s.PP, ShouldBeNil)
		})

		Convey("When pp is an empty string", func() {
			s := raw.Score{PP: ""}.Normalize()
			So(s.PP, ShouldBeNil)
		})

		Convey("When pp is zero", func() {
			s := raw.Score{PP: "0"}.Normalize()
			So(s.PP, ShouldNotBeNil)
			So(*s.PP, ShouldEqual, 0.0)
		})
	})
}

func TestScoreNormalizeMalformed(t *testing.T) {
	Convey("Given a record that breaks the wire format", t, func() {
		s := raw.Score{Score: "lots", MaxCombo: "12x", Date: "yesterday"}.Normalize()

		Convey("Then it should still normalize to zero values", func() {
			So(s.Score, ShouldEqual, int64(0))
			So(s.MaxCombo, ShouldEqual, 0)
			So(s.Date.IsZero(), ShouldBeTrue)
		})
	})
}

const userBestJSON = `[
  {
    "beatmap_id": "129891",
    "score_id": "1",
    "score": "132408001",
    "maxcombo": "2385",
    "count50": "0",
    "count100": "3",
    "count300": "1783",
    "countmiss": "0",
    "countkatu": "2",
    "countgeki": "279",
    "perfect": "1",
    "enabled_mods": "576",
    "user_id": "124493",
    "date": "2013-06-22 09:24:17",
    "rank": "SH",
    "pp": "727.43",
    "replay_available": "0"
  }
]`

func TestUserScoreNormalize(t *testing.T) {
	Convey("Given a get_user_best response", t, func() {
		var in []raw.UserScore
		So(json.Unmarshal([]byte(userBestJSON), &in), ShouldBeNil)

		out := raw.NormalizeUserScores(in)

		Convey("Then the beatmap id should be kept alongside the score", func() {
			So(out, ShouldHaveLength, 1)
			So(out[0].BeatmapID, ShouldEqual, "129891")
			So(out[0].Score.Score, ShouldEqual, int64(132408001))
			So(out[0].Mods.Has(mods.Nightcore), ShouldBeTrue)
			So(*out[0].PP, ShouldEqual, 727.43)
			So(out[0].Date, ShouldEqual, time.Date(2013, 6, 22, 9, 24, 17, 0, time.UTC))
		})
	})
}

const userJSON = `{
  "user_id": "124493",
  "username": "Cookiezi",
  "join_date": "2011-04-16 03:36:11",
  "count300": "6563460",
  "count100": "347425",
  "count50": "32519",
  "playcount": "29104",
  "ranked_score": "25366036453",
  "total_score": "142003826473",
  "pp_rank": "22",
  "level": "101.435",
  "pp_raw": "13386.3",
  "accuracy": "98.90391540527344",
  "count_rank_ss": "166",
  "count_rank_ssh": "406",
  "count_rank_s": "997",
  "count_rank_sh": "1133",
  "count_rank_a": "441",
  "country": "KR",
  "total_seconds_played": "2240403",
  "pp_country_rank": "3",
  "events": [
    {"display_html": "<b>second</b>", "beatmap_id": "2", "beatmapset_id": "20", "date": "2019-02-02 00:00:00", "epicfactor": "2"},
    {"display_html": "<b>first</b>", "beatmap_id": "1", "beatmapset_id": "10", "date": "2019-01-01 00:00:00", "epicfactor": "32"}
  ]
}`

func TestUserNormalize(t *testing.T) {
	Convey("Given a get_user record", t, func() {
		var in raw.User
		So(json.Unmarshal([]byte(userJSON), &in), ShouldBeNil)

		u := in.Normalize()

		Convey("Then numeric strings should become numbers", func() {
			So(u.ID, ShouldEqual, "124493")
			So(u.RankedScore, ShouldEqual, int64(25366036453))
			So(u.TotalScore, ShouldEqual, int64(142003826473))
			So(u.PlayCount, ShouldEqual, int64(29104))
			So(u.Rank, ShouldEqual, int64(22))
			So(u.CountryRank, ShouldEqual, int64(3))
			So(u.Level, ShouldAlmostEqual, 101.435, 1e-9)
			So(u.PP, ShouldAlmostEqual, 13386.3, 1e-9)
			So(u.CountSSH, ShouldEqual, int64(406))
			So(u.JoinDate, ShouldEqual, time.Date(2011, 4, 16, 3, 36, 11, 0, time.UTC))
		})

		Convey("Then the country should be a valid code", func() {
			So(u.Country, ShouldEqual, model.Country("KR"))
			So(u.Country.Valid(), ShouldBeTrue)
		})

		Convey("Then events should keep service order and raw dates", func() {
			So(u.Events, ShouldHaveLength, 2)
			So(u.Events[0].HTML, ShouldEqual, "<b>second</b>")
			So(u.Events[0].Date, ShouldEqual, "2019-02-02 00:00:00")
			So(u.Events[1].EpicFactor, ShouldEqual, 32)
			So(u.Events[1].BeatmapsetID, ShouldEqual, "10")
		})
	})

	Convey("Given a get_user record without events", t, func() {
		u := raw.User{UserID: "1"}.Normalize()

		Convey("Then events should be an empty, non-nil slice", func() {
			So(u.Events, ShouldNotBeNil)
			So(u.Events, ShouldBeEmpty)
		})
	})
}
