package ports

import (
	"context"

	"github.com/aalvaropc/shiprate/internal/carrier"
)

// CarrierEndpoint performs single carrier calls.
// Implementations must be safe for concurrent use; the dispatcher calls Rate
// from several goroutines at once.
type CarrierEndpoint interface {
	Rate(ctx context.Context, req carrier.RateRequest) (carrier.RateResponse, error)
	ValidateAddress(ctx context.Context, req carrier.AddressValidationRequest) (carrier.AddressValidationResponse, error)
}
