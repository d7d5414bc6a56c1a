package upsapi

import (
	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
)

type usernameToken struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type serviceAccessToken struct {
	AccessLicenseNumber string `json:"AccessLicenseNumber"`
}

type security struct {
	UsernameToken      usernameToken      `json:"UsernameToken"`
	ServiceAccessToken serviceAccessToken `json:"ServiceAccessToken"`
}

func newSecurity(c domain.Credentials) security {
	return security{
		UsernameToken:      usernameToken{Username: c.Username, Password: c.Password},
		ServiceAccessToken: serviceAccessToken{AccessLicenseNumber: c.AccessKey},
	}
}

type rateEnvelope struct {
	UPSSecurity security            `json:"UPSSecurity"`
	RateRequest carrier.RateRequest `json:"RateRequest"`
}

type rateReply struct {
	RateResponse *carrier.RateResponse `json:"RateResponse"`
}

type xavEnvelope struct {
	UPSSecurity security                         `json:"UPSSecurity"`
	XAVRequest  carrier.AddressValidationRequest `json:"XAVRequest"`
}

type xavReply struct {
	XAVResponse *carrier.AddressValidationResponse `json:"XAVResponse"`
}
