// Package shiprate is a rate-shopping and address validation client for the
// UPS JSON API.
//
// A Client is built once from a Config and is safe for concurrent use:
//
//	c, err := shiprate.New(shiprate.Config{
//		Environment: shiprate.Sandbox,
//		UnitSystem:  shiprate.Imperial,
//		Credentials: shiprate.Credentials{Username: "u", Password: "p", AccessKey: "k"},
//	})
//	res, err := c.Rates(ctx, shipment, shiprate.RateOptions{})
package shiprate

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/infra/httpclient"
	"github.com/aalvaropc/shiprate/internal/infra/upsapi"
	"github.com/aalvaropc/shiprate/internal/ports"
	"github.com/aalvaropc/shiprate/internal/usecase"
	"github.com/aalvaropc/shiprate/internal/usecase/dispatch"
)

type Client struct {
	cfg     Config
	rates   *usecase.ShopRates
	address *usecase.ValidateAddress
}

type options struct {
	endpoint       ports.CarrierEndpoint
	baseURL        string
	httpTimeout    time.Duration
	maxBodyBytes   int64
	perCallTimeout time.Duration
	maxConcurrency int
	limiter        *rate.Limiter
	log            *zap.Logger
}

type Option func(*options)

// WithEndpoint replaces the HTTP endpoint, e.g. with a fake in tests.
// The HTTP-only options are ignored when it is set.
func WithEndpoint(ep CarrierEndpoint) Option {
	return func(o *options) { o.endpoint = ep }
}

// WithBaseURL overrides the carrier host picked from Config.Environment.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPTimeout bounds each HTTP exchange, body read included.
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *options) { o.httpTimeout = d }
}

func WithMaxBodyBytes(n int64) Option {
	return func(o *options) { o.maxBodyBytes = n }
}

// WithPerCallTimeout gives every rating call its own deadline.
func WithPerCallTimeout(d time.Duration) Option {
	return func(o *options) { o.perCallTimeout = d }
}

// WithMaxConcurrency caps how many rating calls of one request run at once.
func WithMaxConcurrency(n int) Option {
	return func(o *options) { o.maxConcurrency = n }
}

// WithRateLimit limits outbound carrier calls across the whole client.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *options) {
		if perSecond <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// New validates cfg and builds a client. Credentials are passed through and
// only checked by the carrier.
func New(cfg Config, opts ...Option) (*Client, error) {
	if _, err := domain.ParseEnvironment(string(cfg.Environment)); err != nil {
		return nil, &domain.OpError{Op: "shiprate.new", Kind: domain.KindInvalidConfig, Err: err}
	}
	if _, err := domain.ParseUnitSystem(string(cfg.UnitSystem)); err != nil {
		return nil, &domain.OpError{Op: "shiprate.new", Kind: domain.KindInvalidConfig, Err: err}
	}

	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	ep := o.endpoint
	if ep == nil {
		execOpts := []httpclient.ExecutorOption{httpclient.WithMaxBodyBytes(o.maxBodyBytes)}
		if o.httpTimeout > 0 {
			execOpts = append(execOpts, httpclient.WithTimeout(o.httpTimeout))
		}
		ep = upsapi.New(cfg,
			upsapi.WithBaseURL(o.baseURL),
			upsapi.WithExecutor(httpclient.NewExecutor(execOpts...)),
			upsapi.WithLogger(o.log.Named("upsapi")),
		)
	}

	d := dispatch.New(ep,
		dispatch.WithPerCallTimeout(o.perCallTimeout),
		dispatch.WithMaxConcurrency(o.maxConcurrency),
		dispatch.WithLimiter(o.limiter),
		dispatch.WithLogger(o.log.Named("dispatch")),
	)

	return &Client{
		cfg:     cfg,
		rates:   usecase.NewShopRates(cfg, d, usecase.WithRatesLogger(o.log.Named("rates"))),
		address: usecase.NewValidateAddress(ep, usecase.WithAddressLogger(o.log.Named("address"))),
	}, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config { return c.cfg }

// Rates rates a shipment for the services it selects.
//
// Input problems fail with a *ValidationError before any call is made. When
// only some calls fail, the merged result of the others is returned together
// with a *DispatchError.
func (c *Client) Rates(ctx context.Context, desc ShipmentDescription, opts RateOptions) (RateResult, error) {
	return c.rates.Execute(ctx, desc, opts)
}

// ValidateAddress runs one street-level address validation call.
func (c *Client) ValidateAddress(ctx context.Context, req AddressValidationRequest) (AddressValidationResult, error) {
	return c.address.Execute(ctx, req)
}
