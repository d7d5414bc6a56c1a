package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/ports"
)

// --- fakes shared by the use case tests ---

// recordingEndpoint answers rating calls per requested service code and
// records every payload it receives.
type recordingEndpoint struct {
	mu       sync.Mutex
	rates    []carrier.RateRequest
	avs      []carrier.AddressValidationRequest
	failRate map[string]error
	av       carrier.AddressValidationResponse
	avErr    error
}

var _ ports.CarrierEndpoint = (*recordingEndpoint)(nil)

func (e *recordingEndpoint) Rate(_ context.Context, req carrier.RateRequest) (carrier.RateResponse, error) {
	e.mu.Lock()
	e.rates = append(e.rates, req)
	e.mu.Unlock()

	code := req.ServiceCode()
	if err := e.failRate[code]; err != nil {
		return carrier.RateResponse{}, err
	}

	resp := carrier.RateResponse{
		Response: carrier.Response{ResponseStatusCode: carrier.StatusSuccess, ResponseStatusDescription: "Success"},
	}
	shipment := func(c string) carrier.RatedShipment {
		rs := carrier.RatedShipment{
			Service:      carrier.Service{Code: carrier.FlexString(c)},
			TotalCharges: carrier.MonetaryAmount{CurrencyCode: "USD", MonetaryValue: "10.00"},
		}
		// The carrier may answer with negotiated data even when not asked.
		rs.NegotiatedRates = &carrier.NegotiatedRates{NetSummaryCharges: carrier.NetSummaryCharges{
			GrandTotal: carrier.MonetaryAmount{CurrencyCode: "USD", MonetaryValue: "8.00"},
		}}
		return rs
	}
	if code == "" {
		resp.RatedShipment = carrier.OneOrMany[carrier.RatedShipment]{shipment("03"), shipment("02"), shipment("01")}
	} else {
		resp.RatedShipment = carrier.OneOrMany[carrier.RatedShipment]{shipment(code)}
	}
	return resp, nil
}

func (e *recordingEndpoint) ValidateAddress(_ context.Context, req carrier.AddressValidationRequest) (carrier.AddressValidationResponse, error) {
	e.mu.Lock()
	e.avs = append(e.avs, req)
	e.mu.Unlock()
	return e.av, e.avErr
}

func (e *recordingEndpoint) rateCalls() []carrier.RateRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]carrier.RateRequest(nil), e.rates...)
}

func testShipment() domain.ShipmentDescription {
	return domain.ShipmentDescription{
		Shipper: domain.Sender{
			Name: "Acme",
			Address: domain.Address{
				AddressLine1: "100 Main St", PostalCode: "30301", CountryCode: "US",
			},
		},
		ShipTo: domain.Recipient{
			CompanyName: "Globex",
			Address: domain.RecipientAddress{Address: domain.Address{
				AddressLine1: "200 Market St", PostalCode: "80202", CountryCode: "US",
			}},
		},
		Packages: []domain.Package{
			{Weight: 2.5},
			{Weight: 4, Dimensions: &domain.Dimensions{Length: 10, Width: 6, Height: 4}},
		},
	}
}
