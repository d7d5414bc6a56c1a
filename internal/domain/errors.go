package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
	"syscall"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrValidation    = errors.New("validation failed")
	ErrTransport     = errors.New("carrier call failed")
	ErrDispatch      = errors.New("one or more carrier calls failed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindValidation    ErrorKind = "validation"
	KindTransport     ErrorKind = "transport"
	KindDispatch      ErrorKind = "dispatch"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports malformed input found before any carrier call.
// Field is the json path of the offending field, e.g. "ship_to.address.postal_code".
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("validation: field %s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TransportErrorKind is a high-level classification of a failed carrier call.
type TransportErrorKind string

const (
	TransportUnknown       TransportErrorKind = "unknown"
	TransportTimeout       TransportErrorKind = "timeout"
	TransportDNS           TransportErrorKind = "dns"
	TransportConn          TransportErrorKind = "connection"
	TransportHTTP          TransportErrorKind = "http"
	TransportCarrierStatus TransportErrorKind = "carrier_status"
	TransportDecode        TransportErrorKind = "decode"
)

// TransportError reports a single failed carrier call.
type TransportError struct {
	// Index is the plan position of the call; -1 outside a fan-out.
	Index int
	Kind  TransportErrorKind
	// StatusCode is the HTTP or carrier status code, when one was received.
	StatusCode string
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("transport")
	if e.Index >= 0 {
		fmt.Fprintf(&b, " [call %d]", e.Index)
	}
	fmt.Fprintf(&b, ": %s", e.Kind)
	if e.StatusCode != "" {
		fmt.Fprintf(&b, " (status=%s)", e.StatusCode)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// NewTransportError classifies err and wraps it. An existing *TransportError is re-indexed, not re-wrapped.
func NewTransportError(index int, err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		cp := *te
		cp.Index = index
		return &cp
	}
	return &TransportError{
		Index:   index,
		Kind:    ClassifyTransportError(err),
		Message: errMessage(err),
		Err:     err,
	}
}

// DispatchError is returned when at least one planned call failed.
// Partial holds the normalized results of the calls that succeeded.
type DispatchError struct {
	FailedIndices []int
	Failures      map[int]error
	Partial       *RateResult
}

// NewDispatchError builds a DispatchError with sorted indices.
func NewDispatchError(failures map[int]error) *DispatchError {
	idx := make([]int, 0, len(failures))
	for i := range failures {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return &DispatchError{FailedIndices: idx, Failures: failures}
}

func (e *DispatchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	parts := make([]string, 0, len(e.FailedIndices))
	for _, i := range e.FailedIndices {
		parts = append(parts, fmt.Sprintf("#%d: %v", i, e.Failures[i]))
	}
	return fmt.Sprintf("dispatch: %d call(s) failed: %s", len(e.FailedIndices), strings.Join(parts, "; "))
}

func (e *DispatchError) Is(target error) bool { return target == ErrDispatch }

// Unwrap exposes every per-call failure to errors.Is / errors.As.
func (e *DispatchError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, len(e.FailedIndices))
	for _, i := range e.FailedIndices {
		out = append(out, e.Failures[i])
	}
	return out
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	switch kind {
	case KindValidation:
		return errors.Is(err, ErrValidation)
	case KindTransport:
		return errors.Is(err, ErrTransport)
	case KindDispatch:
		return errors.Is(err, ErrDispatch)
	}
	return false
}

// ClassifyTransportError maps low-level network errors to a TransportErrorKind.
func ClassifyTransportError(err error) TransportErrorKind {
	if err == nil {
		return TransportUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TransportTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return TransportDNS
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return TransportTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) {
		return TransportConn
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return TransportConn
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return TransportHTTP
	}

	return TransportUnknown
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
