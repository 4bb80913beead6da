package woocommerce

import (
	"context"
	"strconv"
	"strings"
	"time"

	"WooPulse/internal/domain/models"
	drepo "WooPulse/internal/domain/repository"
	"WooPulse/internal/service/ratelimit"
	"WooPulse/pkg/errs"
	xhttp "WooPulse/pkg/http"
	"WooPulse/pkg/util"

	"github.com/shopspring/decimal"
)

// Option configures the WooCommerce client.
type Option func(*Client)

// Client implements an OrderSource backed by the WooCommerce REST API
// (wp-json/wc/v3). Authentication uses consumer key/secret query
// parameters, the scheme WooCommerce accepts over HTTPS.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	version        string
	pageSize       int
	timeout        time.Duration
	throttle       *ratelimit.Throttle

	http *xhttp.Client
}

// New creates a new WooCommerce OrderSource.
func New(opts ...Option) *Client {
	c := &Client{
		version:  "wc/v3",
		pageSize: 100,
		timeout:  60 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = xhttp.NewClient(
		xhttp.WithTimeout(c.timeout),
		xhttp.WithUserAgent("woopulse"),
	)
	return c
}

// WithBaseURL sets the store URL, e.g. https://shop.example.com.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithCredentials sets the REST API consumer key and secret.
func WithCredentials(key, secret string) Option {
	return func(c *Client) {
		c.consumerKey = key
		c.consumerSecret = secret
	}
}

// WithVersion sets the API version path segment.
func WithVersion(v string) Option {
	return func(c *Client) { c.version = v }
}

// WithPageSize sets orders per page (WooCommerce caps this at 100).
func WithPageSize(n int) Option {
	return func(c *Client) { c.pageSize = n }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithThrottle sets a minimum interval between page requests.
func WithThrottle(t *ratelimit.Throttle) Option {
	return func(c *Client) { c.throttle = t }
}

// wireOrder mirrors the subset of the WooCommerce order payload the
// pipeline consumes. Monetary fields arrive as strings on the wire.
type wireOrder struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
}

// FetchPage retrieves one page of orders in the query window. An empty
// slice means the store has no further pages.
func (c *Client) FetchPage(ctx context.Context, q drepo.OrderQuery, page int) ([]models.Order, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, errs.Wrap(errs.CodeDataSource, "throttle wait", err)
	}

	var raw []wireOrder
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/wp-json/" + c.version + "/orders",
		QueryParams: map[string][]string{
			"after":           {q.After.Format(time.RFC3339)},
			"before":          {q.Before.Format(time.RFC3339)},
			"status":          {q.Status},
			"per_page":        {strconv.Itoa(c.pageSize)},
			"page":            {strconv.Itoa(page)},
			"consumer_key":    {c.consumerKey},
			"consumer_secret": {c.consumerSecret},
		},
	}, &raw)
	if err != nil {
		return nil, errs.Wrap(errs.CodeDataSource, "fetch orders page "+strconv.Itoa(page), err)
	}

	orders := make([]models.Order, 0, len(raw))
	for _, w := range raw {
		o, err := w.toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// toOrder validates the record at the ingestion boundary: timestamps and
// totals either parse or the run aborts.
func (w wireOrder) toOrder() (models.Order, error) {
	created, ok := util.ParseOrderTime(w.DateCreated)
	if !ok {
		return models.Order{}, errs.Newf(errs.CodeMalformedTimestamp,
			"order %d: cannot parse date_created %q", w.ID, w.DateCreated)
	}

	total := decimal.Zero
	if w.Total != "" {
		t, err := decimal.NewFromString(w.Total)
		if err != nil {
			return models.Order{}, errs.Wrap(errs.CodeDataSource,
				"order "+strconv.FormatInt(w.ID, 10)+": bad total", err)
		}
		total = t
	}

	return models.Order{
		ID:          w.ID,
		Number:      w.Number,
		Status:      w.Status,
		DateCreated: created,
		Total:       total,
		Currency:    w.Currency,
	}, nil
}

var _ drepo.OrderSource = (*Client)(nil)
