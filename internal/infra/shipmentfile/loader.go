// Package shipmentfile reads shipment descriptions and address validation
// requests from YAML files.
package shipmentfile

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/ports"
)

type Loader struct {
	strict bool
}

type Option func(*Loader)

// WithStrict rejects keys the file format does not know. On by default.
func WithStrict(strict bool) Option {
	return func(l *Loader) { l.strict = strict }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{strict: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ShipmentLoader = (*Loader)(nil)

func (l *Loader) LoadShipment(path string) (domain.ShipmentDescription, error) {
	var ys yamlShipment
	if err := l.decode("shipmentfile.load_shipment", path, &ys); err != nil {
		return domain.ShipmentDescription{}, err
	}
	return mapShipment(ys), nil
}

// LoadAddress reads an address validation request. A missing request_option
// means validation and classification.
func (l *Loader) LoadAddress(path string) (domain.AddressValidationRequest, error) {
	var ya yamlAddressRequest
	if err := l.decode("shipmentfile.load_address", path, &ya); err != nil {
		return domain.AddressValidationRequest{}, err
	}

	opt := domain.RequestOption(ya.RequestOption)
	if opt == 0 {
		opt = domain.OptionValidationAndClassification
	}
	return domain.AddressValidationRequest{
		Address:       mapAddress(ya.yamlAddress),
		RequestOption: opt,
	}, nil
}

func (l *Loader) decode(op, path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(l.strict)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
