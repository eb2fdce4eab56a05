package carquery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/matzehuels/carquery/pkg/buildinfo"
	"github.com/matzehuels/carquery/pkg/cache"
	"github.com/matzehuels/carquery/pkg/integrations"
	"github.com/matzehuels/carquery/pkg/observability"
)

// DefaultBaseURL is the public CarQuery API endpoint.
const DefaultBaseURL = "https://www.carqueryapi.com/api/0.3/"

// API commands, sent as the cmd query parameter.
const (
	cmdGetYears  = "getYears"
	cmdGetMakes  = "getMakes"
	cmdGetModels = "getModels"
	cmdGetTrims  = "getTrims"
	cmdGetModel  = "getModel"
)

// ErrMalformedResponse is returned in strict mode when a response lacks the
// envelope key its command is expected to carry.
var ErrMalformedResponse = errors.New("malformed response")

// Options configures a Client. The zero value is usable: no cache, one
// attempt per request and the public endpoint.
type Options struct {
	Cache         cache.Cache   // response cache (nil disables caching)
	CacheTTL      time.Duration // lifetime of cached responses (0 means no expiry)
	Refresh       bool          // bypass cached entries but still store fresh ones
	KeyPrefix     string        // scopes cache keys when several deployments share a backend
	RetryAttempts int           // total attempts for transient failures (0 or 1 means no retry)
	RetryDelay    time.Duration // initial backoff between attempts
	BaseURL       string        // endpoint override, mainly for tests
	HTTPClient    *http.Client  // transport override
	Strict        bool          // fail on missing envelope keys instead of returning zero values
}

// Client queries the CarQuery vehicle database.
//
// Every method builds its query from scratch, so a Client is safe for
// concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	refresh bool
	strict  bool
}

// NewClient creates a CarQuery client.
func NewClient(opts Options) *Client {
	base := integrations.NewClient(opts.Cache, "carquery", opts.CacheTTL, map[string]string{
		"User-Agent": buildinfo.UserAgent(),
		"Accept":     "application/json",
	})
	base.SetHTTPClient(opts.HTTPClient)
	if opts.KeyPrefix != "" {
		base.SetKeyer(cache.NewScopedKeyer(nil, opts.KeyPrefix))
	}
	if opts.RetryAttempts > 1 {
		base.SetRetry(opts.RetryAttempts, opts.RetryDelay)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  base,
		baseURL: baseURL,
		refresh: opts.Refresh,
		strict:  opts.Strict,
	}
}

// BaseURL returns the endpoint the client queries.
func (c *Client) BaseURL() string { return c.baseURL }

type yearsResponse struct {
	Years record `json:"Years"`
}

type makesResponse struct {
	Makes []record `json:"Makes"`
}

type modelsResponse struct {
	Models []record `json:"Models"`
}

type trimsResponse struct {
	Trims []record `json:"Trims"`
}

// GetYearRange returns the first and last model years in the database.
//
// A payload without usable year values yields zeros rather than an error
// unless the client is strict.
func (c *Client) GetYearRange(ctx context.Context) (*YearRange, error) {
	done := c.track(ctx, cmdGetYears)

	var resp yearsResponse
	if err := c.query(ctx, cmdGetYears, url.Values{}, &resp); err != nil {
		done(0, err)
		return nil, err
	}
	if c.strict && resp.Years == nil {
		err := malformed(cmdGetYears, "Years")
		done(0, err)
		return nil, err
	}

	yr := yearRangeFromRecord(resp.Years)
	done(1, nil)
	return &yr, nil
}

// GetMakes returns the makes that produced vehicles in year. When soldInUSA
// is true only makes sold in the USA are returned.
func (c *Client) GetMakes(ctx context.Context, year int, soldInUSA bool) ([]Make, error) {
	done := c.track(ctx, cmdGetMakes)

	var resp makesResponse
	if err := c.query(ctx, cmdGetMakes, makesValues(year, soldInUSA), &resp); err != nil {
		done(0, err)
		return nil, err
	}
	if c.strict && resp.Makes == nil {
		err := malformed(cmdGetMakes, "Makes")
		done(0, err)
		return nil, err
	}

	makes := make([]Make, len(resp.Makes))
	for i, r := range resp.Makes {
		makes[i] = makeFromRecord(r)
	}
	done(len(makes), nil)
	return makes, nil
}

// GetModels returns the models of one make in one year.
func (c *Client) GetModels(ctx context.Context, p GetModelsParams) ([]Model, error) {
	done := c.track(ctx, cmdGetModels)

	var resp modelsResponse
	if err := c.query(ctx, cmdGetModels, p.Values(), &resp); err != nil {
		done(0, err)
		return nil, err
	}
	if c.strict && resp.Models == nil {
		err := malformed(cmdGetModels, "Models")
		done(0, err)
		return nil, err
	}

	models := make([]Model, len(resp.Models))
	for i, r := range resp.Models {
		models[i] = modelFromRecord(r)
	}
	done(len(models), nil)
	return models, nil
}

// GetTrims searches trims matching every set filter in p.
func (c *Client) GetTrims(ctx context.Context, p GetTrimsParams) ([]Trim, error) {
	done := c.track(ctx, cmdGetTrims)

	var resp trimsResponse
	if err := c.query(ctx, cmdGetTrims, p.Values(), &resp); err != nil {
		done(0, err)
		return nil, err
	}
	if c.strict && resp.Trims == nil {
		err := malformed(cmdGetTrims, "Trims")
		done(0, err)
		return nil, err
	}

	trims := make([]Trim, len(resp.Trims))
	for i, r := range resp.Trims {
		trims[i] = trimFromRecord(r)
	}
	done(len(trims), nil)
	return trims, nil
}

// GetModelDetail returns the full record of one trim.
//
// Returns an error wrapping [integrations.ErrNotFound] when the API answers
// with an empty list, which is how it reports an unknown id.
func (c *Client) GetModelDetail(ctx context.Context, modelID int) (*ModelDetail, error) {
	done := c.track(ctx, cmdGetModel)

	q := url.Values{}
	q.Set("model", strconv.Itoa(modelID))

	var resp []record
	if err := c.query(ctx, cmdGetModel, q, &resp); err != nil {
		done(0, err)
		return nil, err
	}
	if len(resp) == 0 {
		err := fmt.Errorf("%w: carquery model %d", integrations.ErrNotFound, modelID)
		done(0, err)
		return nil, err
	}

	detail := modelDetailFromRecord(resp[0])
	done(1, nil)
	return &detail, nil
}

// query sets cmd on q, then fetches and decodes the response into v through
// the cache.
func (c *Client) query(ctx context.Context, command string, q url.Values, v any) error {
	q.Set("cmd", command)
	key := c.Keyer().QueryKey(command, q.Encode())
	return c.Cached(ctx, key, c.refresh, v, func() error {
		return c.Get(ctx, integrations.BuildURL(c.baseURL, q), v)
	})
}

// track reports a command to the query hooks and returns the completion
// callback.
func (c *Client) track(ctx context.Context, command string) func(records int, err error) {
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, command)
	start := time.Now()
	return func(records int, err error) {
		hooks.OnQueryComplete(ctx, command, records, time.Since(start), err)
	}
}

func malformed(command, key string) error {
	return fmt.Errorf("%w: %s response has no %q", ErrMalformedResponse, command, key)
}
