package normalize

import (
	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
)

// AddressValidation maps an address validation response. An indicator is
// true when the carrier sent the key at all.
func AddressValidation(resp carrier.AddressValidationResponse) domain.AddressValidationResult {
	out := domain.AddressValidationResult{
		Valid:          resp.ValidAddressIndicator != nil,
		Ambiguous:      resp.AmbiguousAddressIndicator != nil,
		NoCandidates:   resp.NoCandidatesIndicator != nil,
		Classification: classification(resp.AddressClassification),
		Candidates:     make([]domain.AddressKey, 0, len(resp.AddressKeyFormat)),
		Status:         status(resp.Response),
	}

	for _, k := range resp.AddressKeyFormat {
		out.Candidates = append(out.Candidates, domain.AddressKey{
			Classification:     classification(k.AddressClassification),
			AddressLines:       append([]string{}, k.AddressLine...),
			Region:             k.Region,
			City:               k.PoliticalDivision2,
			StateCode:          k.PoliticalDivision1,
			PostalCode:         k.PostcodePrimaryLow,
			PostalCodeExtended: k.PostcodeExtendedLow,
			CountryCode:        k.CountryCode,
		})
	}
	return out
}

func classification(c *carrier.CodeDescription) domain.Classification {
	if c == nil {
		return domain.Classification{}
	}
	return domain.Classification{Code: c.Code, Description: c.Description}
}
