// Package build assembles carrier payloads from domain values.
//
// Every builder validates its input first and fails with a
// *domain.ValidationError before anything reaches the network.
package build

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/usecase/units"
)

// InsuredValueCurrency is the currency insured values are declared in.
const InsuredValueCurrency = "USD"

// RatePayload builds one rating call. serviceOverride wins over
// desc.Service; when both are empty the call shops every service.
// The output depends only on its inputs.
func RatePayload(desc domain.ShipmentDescription, serviceOverride string, cfg domain.Config, opts domain.RateOptions) (carrier.RateRequest, error) {
	if err := Validate(desc); err != nil {
		return carrier.RateRequest{}, err
	}
	if err := checkPackages(desc.Packages, cfg.UnitSystem); err != nil {
		return carrier.RateRequest{}, err
	}

	pickup, err := pickupType(desc)
	if err != nil {
		return carrier.RateRequest{}, err
	}

	req := carrier.RateRequest{
		Request:    carrier.Request{RequestOption: carrier.RequestOptionShop},
		PickupType: pickup,
		Shipment: carrier.Shipment{
			Shipper: shipper(desc.Shipper),
			ShipTo:  shipTo(desc.ShipTo),
			Package: make([]carrier.Package, 0, len(desc.Packages)),
		},
	}

	if desc.CustomerClassification != "" {
		req.CustomerClassification = &carrier.CodeDescription{Code: desc.CustomerClassification}
	}

	if desc.SoldTo != nil {
		req.Shipment.SoldTo = &carrier.SoldTo{
			ShipTo: shipTo(desc.SoldTo.Recipient),
			Option: desc.SoldTo.Option,
		}
	}

	code := serviceOverride
	if code == "" {
		code = desc.Service
	}
	if code != "" {
		req.Request.RequestOption = carrier.RequestOptionRate
		req.Shipment.Service = &carrier.CodeDescription{Code: code}
	}

	if desc.ReturnService != "" {
		req.Shipment.ReturnService = &carrier.CodeDescription{Code: desc.ReturnService}
	}

	for _, p := range desc.Packages {
		req.Shipment.Package = append(req.Shipment.Package, pkg(p, cfg.UnitSystem))
	}

	if desc.SaturdayDelivery {
		req.Shipment.ShipmentServiceOptions = &carrier.ShipmentServiceOptions{
			SaturdayDeliveryIndicator: carrier.Indicator(),
		}
	}
	if opts.NegotiatedRates {
		req.Shipment.ShipmentRatingOptions = &carrier.ShipmentRatingOptions{
			NegotiatedRatesIndicator: carrier.Indicator(),
		}
	}

	return req, nil
}

func pickupType(desc domain.ShipmentDescription) (*carrier.CodeDescription, error) {
	if desc.PickupTypeCode != "" {
		return &carrier.CodeDescription{Code: desc.PickupTypeCode}, nil
	}
	if desc.PickupType == "" {
		return nil, nil
	}
	code, ok := desc.PickupType.Code()
	if !ok {
		return nil, &domain.ValidationError{
			Field: "pickup_type",
			Msg:   fmt.Sprintf("unknown pickup type %q", desc.PickupType),
		}
	}
	return &carrier.CodeDescription{Code: code}, nil
}

// checkPackages covers what struct tags cannot: non-finite numbers, weights
// lost to carrier precision and dimension bounds per unit system.
func checkPackages(pkgs []domain.Package, u domain.UnitSystem) error {
	limit := u.MaxDimension()
	for i, p := range pkgs {
		if !finite(p.Weight) {
			return invalidNumber(fmt.Sprintf("packages[%d].weight", i))
		}
		if units.FormatWeight(p.Weight) == "0" {
			return &domain.ValidationError{
				Field: fmt.Sprintf("packages[%d].weight", i),
				Msg:   "must be at least 0.05 to survive carrier rounding",
			}
		}
		if !finite(p.InsuredValue) {
			return invalidNumber(fmt.Sprintf("packages[%d].insured_value", i))
		}
		if p.Dimensions == nil {
			continue
		}
		sides := []struct {
			name string
			v    float64
		}{
			{"length", p.Dimensions.Length},
			{"width", p.Dimensions.Width},
			{"height", p.Dimensions.Height},
		}
		for _, s := range sides {
			field := fmt.Sprintf("packages[%d].dimensions.%s", i, s.name)
			if !finite(s.v) {
				return invalidNumber(field)
			}
			if s.v < 0 || s.v > limit {
				return &domain.ValidationError{
					Field: field,
					Msg:   fmt.Sprintf("must be between 0 and %s", strconv.FormatFloat(limit, 'f', -1, 64)),
				}
			}
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func invalidNumber(field string) error {
	return &domain.ValidationError{Field: field, Msg: "must be a finite number"}
}

func address(a domain.Address) carrier.Address {
	return carrier.Address{
		AddressLine:       a.Lines(),
		City:              a.City,
		StateProvinceCode: a.StateCode,
		PostalCode:        a.PostalCode,
		CountryCode:       a.CountryCode,
	}
}

func phone(number string) *carrier.Phone {
	if number == "" {
		return nil
	}
	return &carrier.Phone{Number: number}
}

func shipper(s domain.Sender) carrier.Shipper {
	return carrier.Shipper{
		Name:                    s.Name,
		AttentionName:           s.Address.Name,
		ShipperNumber:           s.ShipperNumber,
		TaxIdentificationNumber: s.TaxIdentificationNumber,
		Phone:                   phone(s.PhoneNumber),
		FaxNumber:               s.FaxNumber,
		EMailAddress:            s.EmailAddress,
		Address:                 address(s.Address),
	}
}

func shipTo(r domain.Recipient) carrier.ShipTo {
	addr := address(r.Address.Address)
	if r.Address.Residential {
		addr.ResidentialAddressIndicator = carrier.Indicator()
	}
	return carrier.ShipTo{
		Name:                    r.CompanyName,
		AttentionName:           r.AttentionName,
		LocationID:              r.LocationID,
		TaxIdentificationNumber: r.TaxIdentificationNumber,
		Phone:                   phone(r.PhoneNumber),
		FaxNumber:               r.FaxNumber,
		EMailAddress:            r.EmailAddress,
		Address:                 addr,
	}
}

func pkg(p domain.Package, u domain.UnitSystem) carrier.Package {
	packaging := p.PackagingType
	if packaging == "" {
		packaging = carrier.DefaultPackagingType
	}

	weight, dims := units.ToCarrierUnits(p, u)
	out := carrier.Package{
		PackagingType: carrier.CodeDescription{Code: packaging},
		Description:   p.Description,
		Dimensions:    dims,
		PackageWeight: weight,
	}

	var opts carrier.PackageServiceOptions
	if p.DeliveryConfirmationType != 0 {
		opts.DeliveryConfirmation = &carrier.DeliveryConfirmation{
			DCISType: strconv.Itoa(p.DeliveryConfirmationType),
		}
	}
	if p.InsuredValue > 0 {
		opts.InsuredValue = &carrier.MonetaryAmount{
			CurrencyCode:  InsuredValueCurrency,
			MonetaryValue: strconv.FormatFloat(p.InsuredValue, 'f', 2, 64),
		}
	}
	if opts.DeliveryConfirmation != nil || opts.InsuredValue != nil {
		out.PackageServiceOptions = &opts
	}
	return out
}
