package carrier

type AddressKeyFormat struct {
	ConsigneeName         string            `json:"ConsigneeName,omitempty"`
	AddressClassification *CodeDescription  `json:"AddressClassification,omitempty"`
	AddressLine           OneOrMany[string] `json:"AddressLine"`
	Region                string            `json:"Region,omitempty"`
	PoliticalDivision2    string            `json:"PoliticalDivision2,omitempty"`
	PoliticalDivision1    string            `json:"PoliticalDivision1,omitempty"`
	PostcodePrimaryLow    string            `json:"PostcodePrimaryLow,omitempty"`
	PostcodeExtendedLow   string            `json:"PostcodeExtendedLow,omitempty"`
	CountryCode           string            `json:"CountryCode"`
}

// AddressValidationRequest is one street-level address validation call.
// Request.RequestOption is "1", "2" or "3".
type AddressValidationRequest struct {
	Request          Request          `json:"Request"`
	AddressKeyFormat AddressKeyFormat `json:"AddressKeyFormat"`
}

// AddressValidationResponse is the carrier's answer. Indicators are presence flags.
type AddressValidationResponse struct {
	Response                  Response                    `json:"Response"`
	ValidAddressIndicator     *string                     `json:"ValidAddressIndicator,omitempty"`
	AmbiguousAddressIndicator *string                     `json:"AmbiguousAddressIndicator,omitempty"`
	NoCandidatesIndicator     *string                     `json:"NoCandidatesIndicator,omitempty"`
	AddressClassification     *CodeDescription            `json:"AddressClassification,omitempty"`
	AddressKeyFormat          OneOrMany[AddressKeyFormat] `json:"AddressKeyFormat,omitempty"`
}
