package shipmentfile

import "github.com/aalvaropc/shiprate/internal/domain"

// Field checks are left to the request builder so file and API input fail
// with the same field paths.

func mapShipment(ys yamlShipment) domain.ShipmentDescription {
	desc := domain.ShipmentDescription{
		PickupType:             domain.PickupType(ys.PickupType),
		PickupTypeCode:         ys.PickupTypeCode,
		CustomerClassification: ys.CustomerClassification,
		Shipper: domain.Sender{
			Contact:       mapContact(ys.Shipper.yamlContact),
			Name:          ys.Shipper.Name,
			ShipperNumber: ys.Shipper.ShipperNumber,
			Address:       mapAddress(ys.Shipper.Address),
		},
		ShipTo:           mapRecipient(ys.ShipTo),
		Service:          ys.Service,
		Services:         ys.Services,
		ReturnService:    ys.ReturnService,
		Packages:         make([]domain.Package, 0, len(ys.Packages)),
		SaturdayDelivery: ys.SaturdayDelivery,
	}

	if ys.SoldTo != nil {
		desc.SoldTo = &domain.SoldTo{
			Recipient: mapRecipient(ys.SoldTo.yamlRecipient),
			Option:    ys.SoldTo.Option,
		}
	}

	for _, p := range ys.Packages {
		pkg := domain.Package{
			PackagingType:            p.PackagingType,
			Weight:                   p.Weight,
			Description:              p.Description,
			DeliveryConfirmationType: p.DeliveryConfirmationType,
			InsuredValue:             p.InsuredValue,
		}
		if p.Dimensions != nil {
			pkg.Dimensions = &domain.Dimensions{
				Length: p.Dimensions.Length,
				Width:  p.Dimensions.Width,
				Height: p.Dimensions.Height,
			}
		}
		desc.Packages = append(desc.Packages, pkg)
	}

	return desc
}

func mapRecipient(r yamlRecipient) domain.Recipient {
	return domain.Recipient{
		Contact:       mapContact(r.yamlContact),
		CompanyName:   r.CompanyName,
		AttentionName: r.AttentionName,
		LocationID:    r.LocationID,
		Address: domain.RecipientAddress{
			Address:     mapAddress(r.Address.yamlAddress),
			Residential: r.Address.Residential,
		},
	}
}

func mapContact(c yamlContact) domain.Contact {
	return domain.Contact{
		PhoneNumber:             c.PhoneNumber,
		FaxNumber:               c.FaxNumber,
		EmailAddress:            c.EmailAddress,
		TaxIdentificationNumber: c.TaxIdentificationNumber,
	}
}

func mapAddress(a yamlAddress) domain.Address {
	return domain.Address{
		Name:         a.Name,
		Company:      a.Company,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		City:         a.City,
		StateCode:    a.StateCode,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
	}
}
