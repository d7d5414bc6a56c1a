// Package dispatch runs planned carrier calls concurrently and collects
// their outcomes in plan order.
package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/ports"
)

// Outcome is a successful call. Index is its position in the plan.
type Outcome struct {
	Index    int
	Response carrier.RateResponse
}

type Dispatcher struct {
	endpoint       ports.CarrierEndpoint
	perCallTimeout time.Duration
	maxConcurrency int
	limiter        *rate.Limiter
	log            *zap.Logger
}

type Option func(*Dispatcher)

// WithPerCallTimeout bounds each call with its own deadline. Zero means none.
func WithPerCallTimeout(d time.Duration) Option {
	return func(ds *Dispatcher) {
		if d > 0 {
			ds.perCallTimeout = d
		}
	}
}

// WithMaxConcurrency caps the number of calls in flight. Zero means unbounded.
func WithMaxConcurrency(n int) Option {
	return func(ds *Dispatcher) {
		if n > 0 {
			ds.maxConcurrency = n
		}
	}
}

// WithLimiter makes every call wait for a token first.
func WithLimiter(l *rate.Limiter) Option {
	return func(ds *Dispatcher) { ds.limiter = l }
}

func WithLogger(l *zap.Logger) Option {
	return func(ds *Dispatcher) {
		if l != nil {
			ds.log = l
		}
	}
}

func New(ep ports.CarrierEndpoint, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		endpoint: ep,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends every request and returns the successful outcomes in plan order.
//
// A failed call never stops the others. When any call failed the error is a
// *domain.DispatchError and the successful outcomes are still returned.
// Calls run detached from ctx's cancellation: if ctx ends first, Dispatch
// returns ctx.Err() at once and the late results are dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, reqs []carrier.RateRequest) ([]Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	responses := make([]carrier.RateResponse, len(reqs))
	failures := make([]error, len(reqs))
	callCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	if d.maxConcurrency > 0 {
		g.SetLimit(d.maxConcurrency)
	}

	// launched is written before done closes and read only after.
	launched := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i, req := range reqs {
			// Nothing new starts once the caller has gone.
			if ctx.Err() != nil {
				break
			}
			launched++
			g.Go(func() error {
				resp, err := d.call(ctx, callCtx, i, req)
				if err != nil {
					failures[i] = err
					return nil
				}
				responses[i] = resp
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case <-done:
		// Both cases may be ready; unlaunched slots hold no result.
		if launched < len(reqs) {
			d.log.Info("dispatch.abandoned", zap.Int("calls", len(reqs)), zap.Int("launched", launched), zap.Error(ctx.Err()))
			return nil, ctx.Err()
		}
	case <-ctx.Done():
		d.log.Info("dispatch.abandoned", zap.Int("calls", len(reqs)), zap.Error(ctx.Err()))
		return nil, ctx.Err()
	}

	outcomes := make([]Outcome, 0, len(reqs))
	var failed map[int]error
	for i := range reqs {
		if failures[i] != nil {
			if failed == nil {
				failed = make(map[int]error)
			}
			failed[i] = failures[i]
			continue
		}
		outcomes = append(outcomes, Outcome{Index: i, Response: responses[i]})
	}

	if len(failed) > 0 {
		return outcomes, domain.NewDispatchError(failed)
	}
	return outcomes, nil
}

func (d *Dispatcher) call(parent, ctx context.Context, index int, req carrier.RateRequest) (carrier.RateResponse, error) {
	service := req.ServiceCode()

	if d.limiter != nil {
		if err := d.limiter.Wait(parent); err != nil {
			te := &domain.TransportError{Index: index, Kind: domain.TransportTimeout, Message: err.Error(), Err: err}
			d.log.Warn("dispatch.call.failed", zap.Int("index", index), zap.String("service", service), zap.String("kind", string(te.Kind)), zap.Error(err))
			return carrier.RateResponse{}, te
		}
	}

	if d.perCallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.perCallTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := d.endpoint.Rate(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		te := domain.NewTransportError(index, err)
		d.log.Warn("dispatch.call.failed",
			zap.Int("index", index),
			zap.String("service", service),
			zap.Duration("duration", elapsed),
			zap.String("kind", string(te.Kind)),
			zap.Error(err),
		)
		return carrier.RateResponse{}, te
	}

	if !resp.Response.Success() {
		te := &domain.TransportError{
			Index:      index,
			Kind:       domain.TransportCarrierStatus,
			StatusCode: string(resp.Response.ResponseStatusCode),
			Message:    resp.Response.FailureText(),
		}
		d.log.Warn("dispatch.call.failed",
			zap.Int("index", index),
			zap.String("service", service),
			zap.Duration("duration", elapsed),
			zap.String("kind", string(te.Kind)),
			zap.String("status", te.StatusCode),
		)
		return carrier.RateResponse{}, te
	}

	d.log.Debug("dispatch.call.ok",
		zap.Int("index", index),
		zap.String("service", service),
		zap.Duration("duration", elapsed),
	)
	return resp, nil
}
