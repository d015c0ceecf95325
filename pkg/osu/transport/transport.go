// Package transport performs the HTTP exchange with the osu! API v1.
//
// It owns the base URL and the pre-shared API key; callers only provide an
// endpoint path and the query parameters of that call.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/osuapi/pkg/logger"
	"github.com/okian/osuapi/pkg/metrics"
)

// Defaults for the HTTP transport.
const (
	DefaultBaseURL   = "https://osu.ppy.sh/api"
	DefaultTimeout   = 30 * time.Second
	defaultUserAgent = "osuapi-go"

	keyParam        = "k"
	maxErrorBody    = 4 << 10
	requestIDHeader = "X-Request-ID"
)

var defaultClient = &http.Client{Timeout: DefaultTimeout} //nolint:gochecknoglobals // shared pooled client

// Requester issues a GET against an API path and decodes the JSON body
// into out. Parameters absent from params are not sent.
type Requester interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
}

// HTTP is the net/http backed Requester. It is safe for concurrent use;
// nothing is mutated after construction.
type HTTP struct {
	baseURL   string
	key       string
	userAgent string
	client    *http.Client
	logger    logger.Logger
	metrics   *metrics.Manager
}

var _ Requester = (*HTTP)(nil)

// NewHTTP creates a transport that attaches key to every request.
func NewHTTP(key string, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL:   DefaultBaseURL,
		key:       key,
		userAgent: defaultUserAgent,
		client:    defaultClient,
		logger:    logger.Nop(),
		metrics:   metrics.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// BaseURL returns the API root requests are sent to.
func (h *HTTP) BaseURL() string { return h.baseURL }

// Get implements Requester.
func (h *HTTP) Get(ctx context.Context, path string, params url.Values, out any) error {
	start := time.Now()
	requestID := uuid.NewString()
	log := h.logger.Named("transport")

	req, err := h.newRequest(ctx, path, params)
	if err != nil {
		h.metrics.RecordRequestError(path, metrics.ErrorTypeRequest)
		return fmt.Errorf("%w: %s: %w", ErrRequest, path, redactKey(err))
	}
	req.Header.Set(requestIDHeader, requestID)

	resp, err := h.client.Do(req)
	if err != nil {
		err = redactKey(err)
		h.metrics.RecordRequestError(path, metrics.ErrorTypeRequest)
		log.Warn(ctx, "request failed",
			logger.String("endpoint", path), logger.String("request_id", requestID), logger.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrRequest, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := strconv.Itoa(resp.StatusCode)
	h.metrics.RecordRequest(path, status)
	defer func() {
		took := time.Since(start)
		h.metrics.RecordRequestDuration(path, float64(took)/float64(time.Millisecond))
		log.Debug(ctx, "request done",
			logger.String("endpoint", path),
			logger.String("request_id", requestID),
			logger.Int("status", resp.StatusCode),
			logger.Duration("took", took),
		)
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		h.metrics.RecordRequestError(path, metrics.ErrorTypeStatus)
		return &StatusError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		h.metrics.RecordRequestError(path, metrics.ErrorTypeDecode)
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return nil
}

// newRequest builds the GET request. params is copied, never mutated.
func (h *HTTP) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	q := make(url.Values, len(params)+1)
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	q.Set(keyParam, h.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	return req, nil
}

// readErrorMessage extracts the service's {"error": "..."} message, if any.
func readErrorMessage(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &payload) == nil {
		return payload.Error
	}
	return ""
}

// redactKey replaces the URL carried by a *url.Error so the API key never
// reaches error strings or logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	u, perr := url.Parse(urlErr.URL)
	if perr != nil {
		return &url.Error{Op: urlErr.Op, URL: "<redacted>", Err: urlErr.Err}
	}
	q := u.Query()
	if q.Has(keyParam) {
		q.Set(keyParam, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}
