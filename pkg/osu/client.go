// Package osu is a typed client for the osu! API v1.
//
// Each call issues exactly one GET through a transport.Requester and
// normalizes the service's string-typed records into the model package.
// A Client holds no mutable state and is safe for concurrent use.
package osu

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/okian/osuapi/pkg/logger"
	"github.com/okian/osuapi/pkg/metrics"
	"github.com/okian/osuapi/pkg/osu/model"
	"github.com/okian/osuapi/pkg/osu/raw"
	"github.com/okian/osuapi/pkg/osu/transport"
)

// API endpoint paths, relative to the base URL.
const (
	PathScores     = "/get_scores"
	PathUserBest   = "/get_user_best"
	PathUserRecent = "/get_user_recent"
	PathUser       = "/get_user"
)

// Metric entity labels.
const (
	entityScore = "score"
	entityUser  = "user"
)

// Client calls the osu! API v1 with a fixed API key.
type Client struct {
	key       string
	requester transport.Requester
	logger    logger.Logger
	metrics   *metrics.Manager

	transportOpts []transport.Option
}

// New creates a client that authenticates every request with key.
func New(key string, opts ...Option) *Client {
	c := &Client{
		key:     key,
		logger:  logger.Nop(),
		metrics: metrics.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.requester == nil {
		c.requester = transport.NewHTTP(key, c.transportOpts...)
	}
	c.transportOpts = nil
	c.logger = c.logger.Named("osu")

	return c
}

// Key returns the API key the client was built with.
func (c *Client) Key() string { return c.key }

// Transport returns the requester used for outbound calls.
func (c *Client) Transport() transport.Requester { return c.requester }

// GetScores returns the top scores of a beatmap. It honours WithUser,
// WithMode, WithMods and WithLimit; other options are ignored. WithMods is
// sent as the "mods" parameter, which get_scores filters on.
func (c *Client) GetScores(ctx context.Context, beatmapID string, opts ...QueryOption) ([]model.Score, error) {
	if beatmapID == "" {
		return nil, fmt.Errorf("%w: beatmap id", ErrMissingArgument)
	}
	q := newQuery(opts)

	params := url.Values{"b": {beatmapID}}
	if q.user != nil {
		params.Set("u", *q.user)
		params.Set("type", string(ClassifyUser(*q.user)))
	}
	if q.mode != nil {
		params.Set("m", itoa(int(*q.mode)))
	}
	if q.mods != nil {
		params.Set("mods", strconv.FormatUint(uint64(*q.mods), 10))
	}
	if q.limit != nil {
		params.Set("limit", itoa(*q.limit))
	}

	var records []raw.Score
	if err := c.requester.Get(ctx, PathScores, params, &records); err != nil {
		return nil, err
	}

	scores := raw.NormalizeScores(records)
	c.metrics.RecordRecordsDecoded(entityScore, len(scores))
	c.logger.Debug(ctx, "scores fetched",
		logger.String("beatmap_id", beatmapID), logger.Int("count", len(scores)))
	return scores, nil
}

// GetUserBest returns the top scores of a user in mode. Only WithLimit
// applies; other options are ignored.
func (c *Client) GetUserBest(ctx context.Context, user string, mode model.Gamemode, opts ...QueryOption) ([]model.UserScore, error) {
	return c.userScores(ctx, PathUserBest, user, mode, opts)
}

// GetUserRecent returns the scores a user set in the last 24 hours.
// The service caps the result at 10 entries. Only WithLimit applies; other
// options are ignored.
func (c *Client) GetUserRecent(ctx context.Context, user string, mode model.Gamemode, opts ...QueryOption) ([]model.UserScore, error) {
	return c.userScores(ctx, PathUserRecent, user, mode, opts)
}

func (c *Client) userScores(ctx context.Context, path, user string, mode model.Gamemode, opts []QueryOption) ([]model.UserScore, error) {
	params, err := userParams(user, mode)
	if err != nil {
		return nil, err
	}
	q := newQuery(opts)
	if q.limit != nil {
		params.Set("limit", itoa(*q.limit))
	}

	var records []raw.UserScore
	if err := c.requester.Get(ctx, path, params, &records); err != nil {
		return nil, err
	}

	scores := raw.NormalizeUserScores(records)
	c.metrics.RecordRecordsDecoded(entityScore, len(scores))
	c.logger.Debug(ctx, "user scores fetched",
		logger.String("endpoint", path), logger.String("user", user), logger.Int("count", len(scores)))
	return scores, nil
}

// GetUser returns the profile of a user in mode. It returns nil and no
// error when the service knows no such user. Only WithEventDays applies;
// other options are ignored.
func (c *Client) GetUser(ctx context.Context, user string, mode model.Gamemode, opts ...QueryOption) (*model.User, error) {
	params, err := userParams(user, mode)
	if err != nil {
		return nil, err
	}
	q := newQuery(opts)
	if q.eventDays != nil {
		params.Set("event_days", itoa(*q.eventDays))
	}

	var records []raw.User
	if err := c.requester.Get(ctx, PathUser, params, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		c.logger.Debug(ctx, "user not found", logger.String("user", user))
		return nil, nil
	}

	u := records[0].Normalize()
	c.metrics.RecordRecordsDecoded(entityUser, 1)
	return &u, nil
}

func userParams(user string, mode model.Gamemode) (url.Values, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user", ErrMissingArgument)
	}
	return url.Values{
		"u":    {user},
		"m":    {itoa(int(mode))},
		"type": {string(ClassifyUser(user))},
	}, nil
}
