package domain

import "testing"

func TestSelector(t *testing.T) {
	cases := []struct {
		name string
		desc ShipmentDescription
		kind SelectorKind
		want []string
	}{
		{"none", ShipmentDescription{}, SelectAny, nil},
		{"single", ShipmentDescription{Service: "03"}, SelectSingle, []string{"03"}},
		{"multiple", ShipmentDescription{Services: []string{"03", "04"}}, SelectMultiple, []string{"03", "04"}},
		{"services wins", ShipmentDescription{Service: "01", Services: []string{"03"}}, SelectMultiple, []string{"03"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.desc.Selector()
			if got.Kind != c.kind {
				t.Fatalf("expected kind %d, got %d", c.kind, got.Kind)
			}
			if len(got.Codes) != len(c.want) {
				t.Fatalf("expected codes %v, got %v", c.want, got.Codes)
			}
			for i := range c.want {
				if got.Codes[i] != c.want[i] {
					t.Fatalf("expected codes %v, got %v", c.want, got.Codes)
				}
			}
		})
	}
}

func TestMultipleServicesCopiesInput(t *testing.T) {
	in := []string{"03", "04"}
	sel := MultipleServices(in...)
	in[0] = "99"
	if sel.Codes[0] != "03" {
		t.Fatalf("expected selector to own its codes, got %v", sel.Codes)
	}
}

func TestAddressLinesSkipsEmpty(t *testing.T) {
	a := Address{AddressLine1: "1 Main St", AddressLine3: "Floor 2"}
	lines := a.Lines()
	if len(lines) != 2 || lines[0] != "1 Main St" || lines[1] != "Floor 2" {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestPickupTypeCode(t *testing.T) {
	if c, ok := PickupDailyPickup.Code(); !ok || c != "01" {
		t.Fatalf("expected 01, got %q (%v)", c, ok)
	}
	if c, ok := PickupAirServiceCenter.Code(); !ok || c != "20" {
		t.Fatalf("expected 20, got %q (%v)", c, ok)
	}
	if _, ok := PickupType("teleport").Code(); ok {
		t.Fatalf("expected unknown pickup type")
	}
}

func TestParseConfigEnums(t *testing.T) {
	if _, err := ParseEnvironment("live"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseEnvironment("prod"); err == nil {
		t.Fatalf("expected error for unknown environment")
	}
	if u, err := ParseUnitSystem("metric"); err != nil || u.MaxDimension() != 270 {
		t.Fatalf("expected metric with max 270, got %v %v", u, err)
	}
	if Imperial.MaxDimension() != 108 {
		t.Fatalf("expected imperial max 108")
	}
	if ServiceName("03") != "UPS Ground" {
		t.Fatalf("expected UPS Ground")
	}
}
