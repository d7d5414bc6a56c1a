package build

import (
	"fmt"
	"strconv"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
)

// AddressValidationPayload builds the single address validation call.
func AddressValidationPayload(req domain.AddressValidationRequest) (carrier.AddressValidationRequest, error) {
	switch req.RequestOption {
	case domain.OptionValidation, domain.OptionClassification, domain.OptionValidationAndClassification:
	default:
		return carrier.AddressValidationRequest{}, &domain.ValidationError{
			Field: "request_option",
			Msg:   fmt.Sprintf("must be 1, 2 or 3, got %d", req.RequestOption),
		}
	}

	if err := Validate(req); err != nil {
		return carrier.AddressValidationRequest{}, err
	}

	consignee := req.Name
	if consignee == "" {
		consignee = req.Company
	}

	return carrier.AddressValidationRequest{
		Request: carrier.Request{RequestOption: strconv.Itoa(int(req.RequestOption))},
		AddressKeyFormat: carrier.AddressKeyFormat{
			ConsigneeName:      consignee,
			AddressLine:        req.Lines(),
			PoliticalDivision2: req.City,
			PoliticalDivision1: req.StateCode,
			PostcodePrimaryLow: req.PostalCode,
			CountryCode:        req.CountryCode,
		},
	}, nil
}
