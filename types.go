package shiprate

import (
	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/ports"
)

type (
	Config      = domain.Config
	Credentials = domain.Credentials
	Environment = domain.Environment
	UnitSystem  = domain.UnitSystem

	Address             = domain.Address
	Contact             = domain.Contact
	Sender              = domain.Sender
	Recipient           = domain.Recipient
	RecipientAddress    = domain.RecipientAddress
	SoldTo              = domain.SoldTo
	Package             = domain.Package
	Dimensions          = domain.Dimensions
	PickupType          = domain.PickupType
	ShipmentDescription = domain.ShipmentDescription
	ServiceSelector     = domain.ServiceSelector

	RateOptions  = domain.RateOptions
	RateResult   = domain.RateResult
	Rate         = domain.Rate
	RatedPackage = domain.RatedPackage
	Money        = domain.Money
	Weight       = domain.Weight
	Status       = domain.Status

	RequestOption            = domain.RequestOption
	AddressValidationRequest = domain.AddressValidationRequest
	AddressValidationResult  = domain.AddressValidationResult
	AddressKey               = domain.AddressKey
	Classification           = domain.Classification

	ValidationError = domain.ValidationError
	TransportError  = domain.TransportError
	DispatchError   = domain.DispatchError
)

// Carrier wire types, for custom endpoints.
type (
	CarrierEndpoint        = ports.CarrierEndpoint
	CarrierRateRequest     = carrier.RateRequest
	CarrierRateResponse    = carrier.RateResponse
	CarrierAddressRequest  = carrier.AddressValidationRequest
	CarrierAddressResponse = carrier.AddressValidationResponse
)

const (
	Live    = domain.EnvironmentLive
	Sandbox = domain.EnvironmentSandbox

	Imperial = domain.Imperial
	Metric   = domain.Metric

	OptionValidation                  = domain.OptionValidation
	OptionClassification              = domain.OptionClassification
	OptionValidationAndClassification = domain.OptionValidationAndClassification
)

var (
	ErrValidation = domain.ErrValidation
	ErrTransport  = domain.ErrTransport
	ErrDispatch   = domain.ErrDispatch
)

// ServiceName returns the display name of a service code, or "".
func ServiceName(code string) string { return domain.ServiceName(code) }
