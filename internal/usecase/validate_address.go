package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/ports"
	"github.com/aalvaropc/shiprate/internal/usecase/build"
	"github.com/aalvaropc/shiprate/internal/usecase/normalize"
)

type ValidateAddress struct {
	endpoint ports.CarrierEndpoint
	log      *zap.Logger
}

type ValidateAddressOption func(*ValidateAddress)

func WithAddressLogger(l *zap.Logger) ValidateAddressOption {
	return func(uc *ValidateAddress) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewValidateAddress(ep ports.CarrierEndpoint, opts ...ValidateAddressOption) *ValidateAddress {
	uc := &ValidateAddress{
		endpoint: ep,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates req locally, then makes exactly one carrier call.
func (uc *ValidateAddress) Execute(ctx context.Context, req domain.AddressValidationRequest) (domain.AddressValidationResult, error) {
	payload, err := build.AddressValidationPayload(req)
	if err != nil {
		return domain.AddressValidationResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.AddressValidationResult{}, err
	}

	start := time.Now()
	resp, err := uc.endpoint.ValidateAddress(ctx, payload)
	if err != nil {
		te := domain.NewTransportError(-1, err)
		uc.log.Warn("address.call.failed", zap.String("kind", string(te.Kind)), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return domain.AddressValidationResult{}, te
	}
	if !resp.Response.Success() {
		te := &domain.TransportError{
			Index:      -1,
			Kind:       domain.TransportCarrierStatus,
			StatusCode: string(resp.Response.ResponseStatusCode),
			Message:    resp.Response.FailureText(),
		}
		uc.log.Warn("address.call.failed", zap.String("kind", string(te.Kind)), zap.String("status", te.StatusCode))
		return domain.AddressValidationResult{}, te
	}

	uc.log.Debug("address.call.ok", zap.Duration("duration", time.Since(start)))
	return normalize.AddressValidation(resp), nil
}
