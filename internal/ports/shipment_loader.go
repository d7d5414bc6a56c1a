package ports

import "github.com/aalvaropc/shiprate/internal/domain"

// ShipmentLoader loads rate and address validation inputs from a source (e.g., filesystem).
type ShipmentLoader interface {
	LoadShipment(path string) (domain.ShipmentDescription, error)
	LoadAddress(path string) (domain.AddressValidationRequest, error)
}
