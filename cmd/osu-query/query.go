package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/okian/osuapi/pkg/osu"
	"github.com/okian/osuapi/pkg/osu/model"
	"github.com/okian/osuapi/pkg/osu/mods"
)

// Supported -endpoint values.
const (
	endpointScores = "scores"
	endpointBest   = "best"
	endpointRecent = "recent"
	endpointUser   = "user"
)

var errUsage = errors.New("usage")

type query struct {
	endpoint  string
	beatmap   string
	user      string
	mode      model.Gamemode
	modeSet   bool
	mods      mods.Mods
	modsSet   bool
	limit     int
	eventDays int
	interval  time.Duration
}

func parseFlags(args []string) (query, error) {
	var (
		q       query
		modeArg string
		modsArg string
	)

	fs := flag.NewFlagSet("osu-query", flag.ContinueOnError)
	fs.StringVar(&q.endpoint, "endpoint", endpointScores, "Query to run: scores, best, recent or user")
	fs.StringVar(&q.beatmap, "beatmap", "", "Beatmap id (scores)")
	fs.StringVar(&q.user, "user", "", "User id or username")
	fs.StringVar(&modeArg, "mode", "", "Gamemode: osu, taiko, fruits, mania or 0-3")
	fs.StringVar(&modsArg, "mods", "", "Mods filter for scores, e.g. HDDT or 72")
	fs.IntVar(&q.limit, "limit", 0, "Maximum number of records (0 = service default)")
	fs.IntVar(&q.eventDays, "event-days", 0, "Days of events to include (user)")
	fs.DurationVar(&q.interval, "interval", 0, "Repeat the query at this interval until interrupted")
	if err := fs.Parse(args); err != nil {
		return q, err
	}

	if modeArg != "" {
		m, ok := model.ParseGamemode(modeArg)
		if !ok {
			return q, fmt.Errorf("%w: unknown mode %q", errUsage, modeArg)
		}
		q.mode, q.modeSet = m, true
	}
	if modsArg != "" {
		m, ok := parseMods(modsArg)
		if !ok {
			return q, fmt.Errorf("%w: unknown mods %q", errUsage, modsArg)
		}
		q.mods, q.modsSet = m, true
	}

	switch q.endpoint {
	case endpointScores:
		if q.beatmap == "" {
			return q, fmt.Errorf("%w: -beatmap is required", errUsage)
		}
	case endpointBest, endpointRecent, endpointUser:
		if q.user == "" {
			return q, fmt.Errorf("%w: -user is required", errUsage)
		}
	default:
		return q, fmt.Errorf("%w: unknown endpoint %q", errUsage, q.endpoint)
	}
	return q, nil
}

// parseMods accepts acronyms ("HDDT") or the raw bitmask ("72").
func parseMods(s string) (mods.Mods, bool) {
	if m, ok := mods.Parse(s); ok {
		return m, true
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return mods.Mods(n), true
	}
	return 0, false
}

func (q query) options() []osu.QueryOption {
	var opts []osu.QueryOption
	if q.endpoint == endpointScores {
		opts = append(opts, osu.WithUser(q.user))
		if q.modeSet {
			opts = append(opts, osu.WithMode(q.mode))
		}
		if q.modsSet {
			opts = append(opts, osu.WithMods(q.mods))
		}
	}
	if q.limit > 0 {
		opts = append(opts, osu.WithLimit(q.limit))
	}
	if q.eventDays > 0 {
		opts = append(opts, osu.WithEventDays(q.eventDays))
	}
	return opts
}

func (q query) do(ctx context.Context, c *osu.Client) (any, error) {
	switch q.endpoint {
	case endpointBest:
		return c.GetUserBest(ctx, q.user, q.mode, q.options()...)
	case endpointRecent:
		return c.GetUserRecent(ctx, q.user, q.mode, q.options()...)
	case endpointUser:
		return c.GetUser(ctx, q.user, q.mode, q.options()...)
	default:
		return c.GetScores(ctx, q.beatmap, q.options()...)
	}
}
