package carrier

// Request options for the rating service.
const (
	RequestOptionRate = "Rate"
	RequestOptionShop = "Shop"
)

// Units of measurement the carrier accepts.
const (
	UnitPounds      = "LBS"
	UnitKilograms   = "KGS"
	UnitInches      = "IN"
	UnitCentimetres = "CM"
)

// DefaultPackagingType is "customer supplied package".
const DefaultPackagingType = "02"

type CodeDescription struct {
	Code        string `json:"Code"`
	Description string `json:"Description,omitempty"`
}

type TransactionReference struct {
	CustomerContext string `json:"CustomerContext,omitempty"`
}

type Request struct {
	RequestOption        string                `json:"RequestOption"`
	TransactionReference *TransactionReference `json:"TransactionReference,omitempty"`
}

type Phone struct {
	Number string `json:"Number"`
}

type Address struct {
	AddressLine                 []string `json:"AddressLine"`
	City                        string   `json:"City,omitempty"`
	StateProvinceCode           string   `json:"StateProvinceCode,omitempty"`
	PostalCode                  string   `json:"PostalCode"`
	CountryCode                 string   `json:"CountryCode"`
	ResidentialAddressIndicator *string  `json:"ResidentialAddressIndicator,omitempty"`
}

type Shipper struct {
	Name                    string  `json:"Name"`
	AttentionName           string  `json:"AttentionName,omitempty"`
	ShipperNumber           string  `json:"ShipperNumber,omitempty"`
	TaxIdentificationNumber string  `json:"TaxIdentificationNumber,omitempty"`
	Phone                   *Phone  `json:"Phone,omitempty"`
	FaxNumber               string  `json:"FaxNumber,omitempty"`
	EMailAddress            string  `json:"EMailAddress,omitempty"`
	Address                 Address `json:"Address"`
}

type ShipTo struct {
	Name                    string  `json:"Name"`
	AttentionName           string  `json:"AttentionName,omitempty"`
	LocationID              string  `json:"LocationID,omitempty"`
	TaxIdentificationNumber string  `json:"TaxIdentificationNumber,omitempty"`
	Phone                   *Phone  `json:"Phone,omitempty"`
	FaxNumber               string  `json:"FaxNumber,omitempty"`
	EMailAddress            string  `json:"EMailAddress,omitempty"`
	Address                 Address `json:"Address"`
}

type SoldTo struct {
	ShipTo
	Option string `json:"Option,omitempty"`
}

type UnitOfMeasurement struct {
	Code        string `json:"Code"`
	Description string `json:"Description,omitempty"`
}

type Dimensions struct {
	UnitOfMeasurement UnitOfMeasurement `json:"UnitOfMeasurement"`
	Length            string            `json:"Length"`
	Width             string            `json:"Width"`
	Height            string            `json:"Height"`
}

type PackageWeight struct {
	UnitOfMeasurement UnitOfMeasurement `json:"UnitOfMeasurement"`
	Weight            string            `json:"Weight"`
}

type MonetaryAmount struct {
	CurrencyCode  string `json:"CurrencyCode"`
	MonetaryValue string `json:"MonetaryValue"`
}

type DeliveryConfirmation struct {
	DCISType string `json:"DCISType"`
}

type PackageServiceOptions struct {
	DeliveryConfirmation *DeliveryConfirmation `json:"DeliveryConfirmation,omitempty"`
	InsuredValue         *MonetaryAmount       `json:"InsuredValue,omitempty"`
}

type Package struct {
	PackagingType         CodeDescription        `json:"PackagingType"`
	Description           string                 `json:"Description,omitempty"`
	Dimensions            *Dimensions            `json:"Dimensions,omitempty"`
	PackageWeight         PackageWeight          `json:"PackageWeight"`
	PackageServiceOptions *PackageServiceOptions `json:"PackageServiceOptions,omitempty"`
}

type ShipmentServiceOptions struct {
	SaturdayDeliveryIndicator *string `json:"SaturdayDeliveryIndicator,omitempty"`
}

type ShipmentRatingOptions struct {
	NegotiatedRatesIndicator *string `json:"NegotiatedRatesIndicator,omitempty"`
}

type Shipment struct {
	Shipper                Shipper                 `json:"Shipper"`
	ShipTo                 ShipTo                  `json:"ShipTo"`
	SoldTo                 *SoldTo                 `json:"SoldTo,omitempty"`
	Service                *CodeDescription        `json:"Service,omitempty"`
	ReturnService          *CodeDescription        `json:"ReturnService,omitempty"`
	Package                []Package               `json:"Package"`
	ShipmentServiceOptions *ShipmentServiceOptions `json:"ShipmentServiceOptions,omitempty"`
	ShipmentRatingOptions  *ShipmentRatingOptions  `json:"ShipmentRatingOptions,omitempty"`
}

// RateRequest is one rating call.
type RateRequest struct {
	Request                Request          `json:"Request"`
	PickupType             *CodeDescription `json:"PickupType,omitempty"`
	CustomerClassification *CodeDescription `json:"CustomerClassification,omitempty"`
	Shipment               Shipment         `json:"Shipment"`
}

// ServiceCode returns the requested service code, or "" when shopping all services.
func (r RateRequest) ServiceCode() string {
	if r.Shipment.Service == nil {
		return ""
	}
	return r.Shipment.Service.Code
}

type ResponseError struct {
	ErrorSeverity    string     `json:"ErrorSeverity,omitempty"`
	ErrorCode        FlexString `json:"ErrorCode,omitempty"`
	ErrorDescription string     `json:"ErrorDescription,omitempty"`
}

// StatusSuccess is the carrier's success status code.
const StatusSuccess = "1"

type Response struct {
	ResponseStatusCode        FlexString     `json:"ResponseStatusCode"`
	ResponseStatusDescription string         `json:"ResponseStatusDescription,omitempty"`
	Error                     *ResponseError `json:"Error,omitempty"`
}

// Success reports whether the carrier accepted the call.
func (r Response) Success() bool { return string(r.ResponseStatusCode) == StatusSuccess }

// FailureText is the most specific failure message the carrier gave.
func (r Response) FailureText() string {
	if r.Error != nil && r.Error.ErrorDescription != "" {
		return r.Error.ErrorDescription
	}
	return r.ResponseStatusDescription
}

type Service struct {
	Code             FlexString `json:"Code"`
	Name             string     `json:"Name,omitempty"`
	SaturdayDelivery FlexBool   `json:"SaturdayDelivery,omitempty"`
}

type RateWeight struct {
	UnitOfMeasurement UnitOfMeasurement `json:"UnitOfMeasurement"`
	Weight            FlexString        `json:"Weight"`
}

type RatedPackage struct {
	TransportationCharges MonetaryAmount `json:"TransportationCharges"`
	ServiceOptionsCharges MonetaryAmount `json:"ServiceOptionsCharges"`
	TotalCharges          MonetaryAmount `json:"TotalCharges"`
	Weight                FlexString     `json:"Weight,omitempty"`
	BillingWeight         RateWeight     `json:"BillingWeight"`
}

type NetSummaryCharges struct {
	GrandTotal MonetaryAmount `json:"GrandTotal"`
}

type NegotiatedRates struct {
	NetSummaryCharges NetSummaryCharges `json:"NetSummaryCharges"`
}

type RatedShipment struct {
	Service                  Service                 `json:"Service"`
	RatedShipmentWarning     OneOrMany[string]       `json:"RatedShipmentWarning,omitempty"`
	BillingWeight            RateWeight              `json:"BillingWeight"`
	TransportationCharges    MonetaryAmount          `json:"TransportationCharges"`
	ServiceOptionsCharges    MonetaryAmount          `json:"ServiceOptionsCharges"`
	TotalCharges             MonetaryAmount          `json:"TotalCharges"`
	GuaranteedDaysToDelivery FlexString              `json:"GuaranteedDaysToDelivery,omitempty"`
	ScheduledDeliveryTime    string                  `json:"ScheduledDeliveryTime,omitempty"`
	RatedPackage             OneOrMany[RatedPackage] `json:"RatedPackage,omitempty"`
	NegotiatedRates          *NegotiatedRates        `json:"NegotiatedRates,omitempty"`
}

// RateResponse is the carrier's answer to one RateRequest.
type RateResponse struct {
	Response      Response                 `json:"Response"`
	RatedShipment OneOrMany[RatedShipment] `json:"RatedShipment"`
}
