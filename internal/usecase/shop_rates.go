package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/usecase/build"
	"github.com/aalvaropc/shiprate/internal/usecase/dispatch"
	"github.com/aalvaropc/shiprate/internal/usecase/normalize"
	"github.com/aalvaropc/shiprate/internal/usecase/plan"
)

type ShopRates struct {
	cfg        domain.Config
	dispatcher *dispatch.Dispatcher
	log        *zap.Logger
}

type ShopRatesOption func(*ShopRates)

func WithRatesLogger(l *zap.Logger) ShopRatesOption {
	return func(uc *ShopRates) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewShopRates(cfg domain.Config, d *dispatch.Dispatcher, opts ...ShopRatesOption) *ShopRates {
	uc := &ShopRates{
		cfg:        cfg,
		dispatcher: d,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute plans, builds and dispatches every rating call for desc and merges
// the answers. Input errors are returned before any call is made.
//
// When some calls fail the merged result of the others is returned together
// with a *domain.DispatchError whose Partial points at the same result.
func (uc *ShopRates) Execute(ctx context.Context, desc domain.ShipmentDescription, opts domain.RateOptions) (domain.RateResult, error) {
	entries, err := plan.Plan(desc.Selector())
	if err != nil {
		return domain.RateResult{}, err
	}

	reqs := make([]carrier.RateRequest, 0, len(entries))
	for _, service := range entries {
		req, err := build.RatePayload(desc, service, uc.cfg, opts)
		if err != nil {
			return domain.RateResult{}, err
		}
		reqs = append(reqs, req)
	}

	uc.log.Info("rates.plan",
		zap.Int("calls", len(reqs)),
		zap.Strings("services", entries),
		zap.Bool("negotiated", opts.NegotiatedRates),
	)

	outcomes, err := uc.dispatcher.Dispatch(ctx, reqs)
	var de *domain.DispatchError
	if err != nil && !errors.As(err, &de) {
		return domain.RateResult{}, err
	}

	responses := make([]carrier.RateResponse, 0, len(outcomes))
	for _, o := range outcomes {
		responses = append(responses, o.Response)
	}
	result := normalize.MergeRates(responses, opts)

	if de != nil {
		de.Partial = &result
		uc.log.Warn("rates.partial",
			zap.Ints("failed", de.FailedIndices),
			zap.Int("rates", len(result.Rates)),
		)
		return result, de
	}
	return result, nil
}
