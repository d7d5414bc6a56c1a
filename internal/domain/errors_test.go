package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "shiprate.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match op error")
	}
}

func TestValidationErrorIsSentinel(t *testing.T) {
	err := fmt.Errorf("build: %w", &ValidationError{Field: "postal_code", Msg: "is required"})

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected errors.Is(err, ErrValidation)")
	}
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected IsKind validation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "postal_code" {
		t.Fatalf("expected field postal_code, got %+v", ve)
	}
}

func TestNewTransportErrorKeepsExistingClassification(t *testing.T) {
	inner := &TransportError{Index: -1, Kind: TransportCarrierStatus, StatusCode: "0", Message: "Hard failure"}

	got := NewTransportError(2, inner)
	if got.Index != 2 {
		t.Fatalf("expected index 2, got %d", got.Index)
	}
	if got.Kind != TransportCarrierStatus {
		t.Fatalf("expected kind carrier_status, got %s", got.Kind)
	}
	if inner.Index != -1 {
		t.Fatalf("expected original error to stay untouched")
	}
}

func TestDispatchErrorSortsIndicesAndUnwraps(t *testing.T) {
	te := &TransportError{Index: 3, Kind: TransportTimeout}
	err := NewDispatchError(map[int]error{
		3: te,
		1: &TransportError{Index: 1, Kind: TransportConn},
	})

	if len(err.FailedIndices) != 2 || err.FailedIndices[0] != 1 || err.FailedIndices[1] != 3 {
		t.Fatalf("expected sorted indices [1 3], got %v", err.FailedIndices)
	}
	if !errors.Is(err, ErrDispatch) {
		t.Fatalf("expected ErrDispatch")
	}
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected per-call transport errors reachable via errors.Is")
	}

	var got *TransportError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to find a TransportError")
	}
}
