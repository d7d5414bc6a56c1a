package shipmentfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/shiprate/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadShipment_Valid(t *testing.T) {
	p := writeFile(t, "shipment.yaml", `
pickup_type: daily_pickup
shipper:
  name: Acme Widgets
  shipper_number: A1B2C3
  phone_number: 555-0100
  address:
    address_line_1: 100 Main St
    city: Atlanta
    state_code: GA
    postal_code: "30301"
    country_code: US
ship_to:
  company_name: Globex
  address:
    address_line_1: 200 Market St
    postal_code: "80202"
    country_code: US
    residential: true
sold_to:
  company_name: Importer Ltd
  option: "01"
  address:
    address_line_1: 1 Dock Rd
    postal_code: H3Z2Y7
    country_code: CA
services: ["03", "02"]
saturday_delivery: true
packages:
  - weight: 12.5
    delivery_confirmation_type: 2
    dimensions: {length: 10, width: 8, height: 4}
  - weight: 3
`)

	desc, err := NewLoader().LoadShipment(p)
	if err != nil {
		t.Fatalf("LoadShipment error: %v", err)
	}

	if desc.PickupType != domain.PickupDailyPickup {
		t.Fatalf("expected daily_pickup, got %q", desc.PickupType)
	}
	if desc.Shipper.Name != "Acme Widgets" || desc.Shipper.PhoneNumber != "555-0100" {
		t.Fatalf("unexpected shipper: %+v", desc.Shipper)
	}
	if desc.Shipper.Address.PostalCode != "30301" {
		t.Fatalf("expected postal code 30301, got %q", desc.Shipper.Address.PostalCode)
	}
	if !desc.ShipTo.Address.Residential {
		t.Fatalf("expected residential ship_to")
	}
	if desc.SoldTo == nil || desc.SoldTo.Option != "01" || desc.SoldTo.Address.CountryCode != "CA" {
		t.Fatalf("unexpected sold_to: %+v", desc.SoldTo)
	}
	sel := desc.Selector()
	if sel.Kind != domain.SelectMultiple || len(sel.Codes) != 2 {
		t.Fatalf("expected two services, got %+v", sel)
	}
	if len(desc.Packages) != 2 {
		t.Fatalf("expected 2 packages, got=%d", len(desc.Packages))
	}
	if desc.Packages[0].Dimensions == nil || desc.Packages[0].Dimensions.Width != 8 {
		t.Fatalf("expected dimensions on first package")
	}
	if desc.Packages[1].Dimensions != nil {
		t.Fatalf("expected no dimensions on second package")
	}
	if !desc.SaturdayDelivery {
		t.Fatalf("expected saturday delivery")
	}
}

func TestLoadShipment_UnknownKey(t *testing.T) {
	p := writeFile(t, "bad.yaml", `
shipper:
  name: Acme
  adress: {}
`)

	_, err := NewLoader().LoadShipment(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "adress") {
		t.Fatalf("expected unknown key in error, got %v", err)
	}

	if _, err := NewLoader(WithStrict(false)).LoadShipment(p); err != nil {
		t.Fatalf("expected lenient loader to accept unknown keys, got %v", err)
	}
}

func TestLoadShipment_Missing(t *testing.T) {
	_, err := NewLoader().LoadShipment(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadAddress(t *testing.T) {
	p := writeFile(t, "address.yaml", `
address_line_1: 26601 Aliso Creek Rd
city: Aliso Viejo
state_code: CA
postal_code: "92656"
country_code: US
request_option: 1
`)

	req, err := NewLoader().LoadAddress(p)
	if err != nil {
		t.Fatalf("LoadAddress error: %v", err)
	}
	if req.RequestOption != domain.OptionValidation {
		t.Fatalf("expected option 1, got %d", req.RequestOption)
	}
	if req.City != "Aliso Viejo" || req.PostalCode != "92656" {
		t.Fatalf("unexpected address: %+v", req.Address)
	}
}

func TestLoadAddress_DefaultOption(t *testing.T) {
	p := writeFile(t, "address.yaml", "address_line_1: 1 Main St\npostal_code: \"10001\"\ncountry_code: US\n")

	req, err := NewLoader().LoadAddress(p)
	if err != nil {
		t.Fatalf("LoadAddress error: %v", err)
	}
	if req.RequestOption != domain.OptionValidationAndClassification {
		t.Fatalf("expected default option 3, got %d", req.RequestOption)
	}
}
