// Package normalize maps carrier responses into domain results.
package normalize

import (
	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
)

// MergeRates concatenates the rated shipments of responses, given in plan
// order, without re-sorting. The status is the last response's status.
// Negotiated totals are kept only when opts asks for them.
func MergeRates(responses []carrier.RateResponse, opts domain.RateOptions) domain.RateResult {
	out := domain.RateResult{Rates: []domain.Rate{}}
	for _, resp := range responses {
		for _, rs := range resp.RatedShipment {
			out.Rates = append(out.Rates, rate(rs, opts))
		}
		out.Status = status(resp.Response)
	}
	return out
}

func rate(rs carrier.RatedShipment, opts domain.RateOptions) domain.Rate {
	code := string(rs.Service.Code)
	name := rs.Service.Name
	if name == "" {
		name = domain.ServiceName(code)
	}

	r := domain.Rate{
		ServiceCode:              code,
		ServiceName:              name,
		SaturdayDelivery:         bool(rs.Service.SaturdayDelivery),
		BillingWeight:            weight(rs.BillingWeight),
		TransportationCharges:    money(rs.TransportationCharges),
		ServiceOptionsCharges:    money(rs.ServiceOptionsCharges),
		TotalCharges:             money(rs.TotalCharges),
		GuaranteedDaysToDelivery: string(rs.GuaranteedDaysToDelivery),
		ScheduledDeliveryTime:    rs.ScheduledDeliveryTime,
	}

	if len(rs.RatedShipmentWarning) > 0 {
		r.Warnings = append([]string(nil), rs.RatedShipmentWarning...)
	}

	if len(rs.RatedPackage) > 0 {
		r.Packages = make([]domain.RatedPackage, 0, len(rs.RatedPackage))
		for _, p := range rs.RatedPackage {
			r.Packages = append(r.Packages, domain.RatedPackage{
				Weight:                string(p.Weight),
				BillingWeight:         weight(p.BillingWeight),
				TransportationCharges: money(p.TransportationCharges),
				ServiceOptionsCharges: money(p.ServiceOptionsCharges),
				TotalCharges:          money(p.TotalCharges),
			})
		}
	}

	if opts.NegotiatedRates && rs.NegotiatedRates != nil {
		total := money(rs.NegotiatedRates.NetSummaryCharges.GrandTotal)
		if !total.IsZero() {
			r.NegotiatedTotal = &total
		}
	}
	return r
}

func money(m carrier.MonetaryAmount) domain.Money {
	return domain.Money{Currency: m.CurrencyCode, Amount: m.MonetaryValue}
}

func weight(w carrier.RateWeight) domain.Weight {
	return domain.Weight{Unit: w.UnitOfMeasurement.Code, Value: string(w.Weight)}
}

func status(r carrier.Response) domain.Status {
	return domain.Status{
		Code:        string(r.ResponseStatusCode),
		Description: r.ResponseStatusDescription,
	}
}
