package domain

// RateOptions tune a rate request.
type RateOptions struct {
	// NegotiatedRates asks the carrier to include negotiated totals.
	// Missing negotiated data in the response is not an error.
	NegotiatedRates bool
}

// Money is a carrier-reported amount. Amount is kept as the carrier's decimal string.
type Money struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// IsZero reports whether no amount was reported.
func (m Money) IsZero() bool { return m.Currency == "" && m.Amount == "" }

// Weight is a carrier-reported weight.
type Weight struct {
	Unit  string `json:"unit"`
	Value string `json:"value"`
}

// Status is the normalized carrier response status.
type Status struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RatedPackage is the per-package breakdown of a rate.
type RatedPackage struct {
	Weight                string `json:"weight,omitempty"`
	BillingWeight         Weight `json:"billing_weight"`
	TransportationCharges Money  `json:"transportation_charges"`
	ServiceOptionsCharges Money  `json:"service_options_charges"`
	TotalCharges          Money  `json:"total_charges"`
}

// Rate is one rated service.
type Rate struct {
	ServiceCode      string `json:"service_code"`
	ServiceName      string `json:"service_name"`
	SaturdayDelivery bool   `json:"saturday_delivery,omitempty"`

	// Warnings carries RatedShipmentWarning text for this entry only.
	Warnings []string `json:"warnings,omitempty"`

	BillingWeight         Weight `json:"billing_weight"`
	TransportationCharges Money  `json:"transportation_charges"`
	ServiceOptionsCharges Money  `json:"service_options_charges"`
	TotalCharges          Money  `json:"total_charges"`

	GuaranteedDaysToDelivery string `json:"guaranteed_days_to_delivery,omitempty"`
	ScheduledDeliveryTime    string `json:"scheduled_delivery_time,omitempty"`

	Packages []RatedPackage `json:"packages,omitempty"`

	// NegotiatedTotal is nil unless negotiated rates were requested and returned.
	NegotiatedTotal *Money `json:"negotiated_total,omitempty"`
}

// RateResult is the merged, normalized outcome of a rate request.
// Rates are in plan order, then carrier order; they are never re-sorted.
type RateResult struct {
	Rates  []Rate `json:"rates"`
	Status Status `json:"status"`
}
