package osu

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/osuapi/pkg/logger"
	"github.com/okian/osuapi/pkg/metrics"
	"github.com/okian/osuapi/pkg/osu/model"
	"github.com/okian/osuapi/pkg/osu/mods"
	"github.com/okian/osuapi/pkg/osu/transport"
)

// Option configures a Client.
type Option func(*Client)

// WithRequester replaces the HTTP transport entirely. Transport options
// given alongside it are ignored.
func WithRequester(r transport.Requester) Option {
	return func(c *Client) {
		if r != nil {
			c.requester = r
		}
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithBaseURL(baseURL))
	}
}

// WithHTTPClient sets the net/http client used by the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithHTTPClient(client))
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithTimeout(timeout))
	}
}

// WithLogger sets the logger of the client and its transport.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
			c.transportOpts = append(c.transportOpts, transport.WithLogger(l))
		}
	}
}

// WithMetrics records client and transport metrics on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
			c.transportOpts = append(c.transportOpts, transport.WithMetrics(m))
		}
	}
}

// QueryOption adds an optional parameter to a single call. Each Get method
// documents the options it honours and ignores the rest.
type QueryOption func(*query)

// query holds the optional parameters of one call. Nil means absent.
type query struct {
	user      *string
	mode      *model.Gamemode
	mods      *mods.Mods
	limit     *int
	eventDays *int
}

// WithUser restricts GetScores to one user. An empty user is ignored.
func WithUser(user string) QueryOption {
	return func(q *query) {
		if user != "" {
			q.user = &user
		}
	}
}

// WithMode restricts GetScores to one gamemode.
func WithMode(mode model.Gamemode) QueryOption {
	return func(q *query) { q.mode = &mode }
}

// WithMods restricts GetScores to scores played with exactly m.
func WithMods(m mods.Mods) QueryOption {
	return func(q *query) { q.mods = &m }
}

// WithLimit caps the number of returned records.
func WithLimit(limit int) QueryOption {
	return func(q *query) { q.limit = &limit }
}

// WithEventDays sets how many days of events GetUser returns.
func WithEventDays(days int) QueryOption {
	return func(q *query) { q.eventDays = &days }
}

func newQuery(opts []QueryOption) query {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

func itoa(v int) string { return strconv.Itoa(v) }
