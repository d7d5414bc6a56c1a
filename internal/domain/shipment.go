package domain

// Address is the postal address of a shipment party.
// AddressLine1, PostalCode and CountryCode are always required.
type Address struct {
	Name         string `json:"name,omitempty"`
	Company      string `json:"company,omitempty"`
	AddressLine1 string `json:"address_line_1" validate:"required"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AddressLine3 string `json:"address_line_3,omitempty"`
	City         string `json:"city,omitempty"`
	// StateCode is mandatory for some countries; that rule is left to the carrier.
	StateCode   string `json:"state_code,omitempty"`
	PostalCode  string `json:"postal_code" validate:"required"`
	CountryCode string `json:"country_code" validate:"required,len=2"`
}

// Lines returns the non-empty address lines in order.
func (a Address) Lines() []string {
	out := make([]string, 0, 3)
	for _, l := range []string{a.AddressLine1, a.AddressLine2, a.AddressLine3} {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Contact holds the optional contact fields shared by senders and recipients.
type Contact struct {
	PhoneNumber             string `json:"phone_number,omitempty"`
	FaxNumber               string `json:"fax_number,omitempty"`
	EmailAddress            string `json:"email_address,omitempty"`
	TaxIdentificationNumber string `json:"tax_identification_number,omitempty"`
}

// Sender is the shipper.
type Sender struct {
	Contact
	Name string `json:"name"`
	// ShipperNumber is optional but recommended for accurate rating.
	ShipperNumber string  `json:"shipper_number,omitempty"`
	Address       Address `json:"address"`
}

// RecipientAddress is an Address with the residential flag.
type RecipientAddress struct {
	Address
	Residential bool `json:"residential,omitempty"`
}

// Recipient is the ship-to party.
type Recipient struct {
	Contact
	CompanyName   string           `json:"company_name"`
	AttentionName string           `json:"attention_name,omitempty"`
	LocationID    string           `json:"location_id,omitempty"`
	Address       RecipientAddress `json:"address"`
}

// SoldTo is the party importing the goods and paying duties.
type SoldTo struct {
	Recipient
	// Option applies to the NAFTA certificate of origin form.
	Option string `json:"option,omitempty"`
}

// Dimensions are the package sides, in inches or centimetres depending on the client's UnitSystem.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Package is one parcel of a shipment.
type Package struct {
	PackagingType string  `json:"packaging_type,omitempty"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	Description   string  `json:"description,omitempty"`
	// DeliveryConfirmationType is 1 or 2; 0 means not requested.
	DeliveryConfirmationType int         `json:"delivery_confirmation_type,omitempty" validate:"omitempty,oneof=1 2"`
	InsuredValue             float64     `json:"insured_value,omitempty" validate:"gte=0"`
	Dimensions               *Dimensions `json:"dimensions,omitempty"`
}

// PickupType names the carrier pickup options.
type PickupType string

const (
	PickupDailyPickup          PickupType = "daily_pickup"
	PickupCustomerCounter      PickupType = "customer_counter"
	PickupOneTimePickup        PickupType = "one_time_pickup"
	PickupOnCallAir            PickupType = "on_call_air"
	PickupSuggestedRetailRates PickupType = "suggested_retail_rates"
	PickupLetterCenter         PickupType = "letter_center"
	PickupAirServiceCenter     PickupType = "air_service_center"
)

var pickupCodes = map[PickupType]string{
	PickupDailyPickup:          "01",
	PickupCustomerCounter:      "03",
	PickupOneTimePickup:        "06",
	PickupOnCallAir:            "07",
	PickupSuggestedRetailRates: "11",
	PickupLetterCenter:         "19",
	PickupAirServiceCenter:     "20",
}

// Code returns the carrier code for a known pickup type.
func (p PickupType) Code() (string, bool) {
	c, ok := pickupCodes[p]
	return c, ok
}

// ShipmentDescription is everything needed to rate a shipment.
//
// Service and Services are both settable; Services wins when both are given.
// Use Selector to get the resolved choice.
type ShipmentDescription struct {
	PickupType PickupType `json:"pickup_type,omitempty"`
	// PickupTypeCode overrides PickupType when set.
	PickupTypeCode         string `json:"pickup_type_code,omitempty"`
	CustomerClassification string `json:"customer_classification,omitempty"`

	Shipper Sender    `json:"shipper"`
	ShipTo  Recipient `json:"ship_to"`
	SoldTo  *SoldTo   `json:"sold_to,omitempty"`

	Service  string   `json:"service,omitempty"`
	Services []string `json:"services,omitempty"`

	ReturnService    string    `json:"return_service,omitempty"`
	Packages         []Package `json:"packages" validate:"min=1,dive"`
	SaturdayDelivery bool      `json:"saturday_delivery,omitempty"`
}

// SelectorKind discriminates ServiceSelector.
type SelectorKind int

const (
	// SelectAny leaves the service open so the carrier returns every applicable one.
	SelectAny SelectorKind = iota
	SelectSingle
	SelectMultiple
)

// ServiceSelector is the resolved service choice of a shipment.
type ServiceSelector struct {
	Kind  SelectorKind
	Codes []string
}

func AnyService() ServiceSelector { return ServiceSelector{Kind: SelectAny} }

func SingleService(code string) ServiceSelector {
	return ServiceSelector{Kind: SelectSingle, Codes: []string{code}}
}

func MultipleServices(codes ...string) ServiceSelector {
	cp := make([]string, len(codes))
	copy(cp, codes)
	return ServiceSelector{Kind: SelectMultiple, Codes: cp}
}

// Selector resolves Service vs Services.
func (s ShipmentDescription) Selector() ServiceSelector {
	switch {
	case len(s.Services) > 0:
		return MultipleServices(s.Services...)
	case s.Service != "":
		return SingleService(s.Service)
	default:
		return AnyService()
	}
}
