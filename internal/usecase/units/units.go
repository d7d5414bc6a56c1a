// Package units maps package weights and dimensions to the carrier's unit codes.
package units

import (
	"math"
	"strconv"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
)

const (
	poundsPerKilogram  = 2.20462262185
	centimetresPerInch = 2.54
)

// Carrier format precision.
const (
	weightDecimals    = 1
	dimensionDecimals = 2
)

// Codes returns the carrier weight and length unit codes for a unit system.
func Codes(u domain.UnitSystem) (weight string, length string) {
	if u == domain.Metric {
		return carrier.UnitKilograms, carrier.UnitCentimetres
	}
	return carrier.UnitPounds, carrier.UnitInches
}

// ToCarrierUnits tags the package weight and dimensions with the unit codes
// the carrier expects. Values are only rounded to the carrier's precision.
func ToCarrierUnits(p domain.Package, u domain.UnitSystem) (carrier.PackageWeight, *carrier.Dimensions) {
	weightCode, lengthCode := Codes(u)

	w := carrier.PackageWeight{
		UnitOfMeasurement: carrier.UnitOfMeasurement{Code: weightCode},
		Weight:            FormatWeight(p.Weight),
	}

	if p.Dimensions == nil {
		return w, nil
	}

	d := &carrier.Dimensions{
		UnitOfMeasurement: carrier.UnitOfMeasurement{Code: lengthCode},
		Length:            FormatDimension(p.Dimensions.Length),
		Width:             FormatDimension(p.Dimensions.Width),
		Height:            FormatDimension(p.Dimensions.Height),
	}
	return w, d
}

// Convert re-expresses a package's weight and dimensions in another unit system.
func Convert(p domain.Package, from, to domain.UnitSystem) domain.Package {
	if from == to {
		return p
	}

	out := p
	wf, lf := factors(from, to)
	out.Weight = p.Weight * wf
	if p.Dimensions != nil {
		out.Dimensions = &domain.Dimensions{
			Length: p.Dimensions.Length * lf,
			Width:  p.Dimensions.Width * lf,
			Height: p.Dimensions.Height * lf,
		}
	}
	return out
}

func factors(from, to domain.UnitSystem) (weight float64, length float64) {
	if from == domain.Metric && to == domain.Imperial {
		return poundsPerKilogram, 1 / centimetresPerInch
	}
	if from == domain.Imperial && to == domain.Metric {
		return 1 / poundsPerKilogram, centimetresPerInch
	}
	return 1, 1
}

// FormatWeight renders a weight with at most one decimal place.
func FormatWeight(v float64) string { return format(v, weightDecimals) }

// FormatDimension renders a side length with at most two decimal places.
func FormatDimension(v float64) string { return format(v, dimensionDecimals) }

func format(v float64, decimals int) string {
	pow := math.Pow10(decimals)
	rounded := math.Round(v*pow) / pow
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
