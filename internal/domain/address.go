package domain

// RequestOption selects what an address validation call does.
type RequestOption int

const (
	OptionValidation                  RequestOption = 1
	OptionClassification              RequestOption = 2
	OptionValidationAndClassification RequestOption = 3
)

// AddressValidationRequest is an address plus the validation mode.
type AddressValidationRequest struct {
	Address
	RequestOption RequestOption `json:"request_option" validate:"oneof=1 2 3"`
}

// Classification is the carrier's address type (e.g. commercial / residential).
type Classification struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// AddressKey is one canonical address candidate.
type AddressKey struct {
	Classification     Classification `json:"classification"`
	AddressLines       []string       `json:"address_lines"`
	Region             string         `json:"region,omitempty"`
	City               string         `json:"city,omitempty"`
	StateCode          string         `json:"state_code,omitempty"`
	PostalCode         string         `json:"postal_code,omitempty"`
	PostalCodeExtended string         `json:"postal_code_extended,omitempty"`
	CountryCode        string         `json:"country_code,omitempty"`
}

// AddressValidationResult is the normalized address validation outcome.
type AddressValidationResult struct {
	Valid          bool           `json:"valid"`
	Ambiguous      bool           `json:"ambiguous"`
	NoCandidates   bool           `json:"no_candidates"`
	Classification Classification `json:"classification"`
	Candidates     []AddressKey   `json:"candidates"`
	Status         Status         `json:"status"`
}
