// Package upsapi is the HTTP/JSON carrier endpoint.
package upsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aalvaropc/shiprate/internal/carrier"
	"github.com/aalvaropc/shiprate/internal/domain"
	"github.com/aalvaropc/shiprate/internal/infra/httpclient"
	"github.com/aalvaropc/shiprate/internal/ports"
)

const (
	LiveBaseURL    = "https://onlinetools.ups.com"
	SandboxBaseURL = "https://wwwcie.ups.com"

	RatePath = "/rest/Rate"
	XAVPath  = "/rest/XAV"
)

// BaseURL returns the carrier host for env.
func BaseURL(env domain.Environment) string {
	if env == domain.EnvironmentLive {
		return LiveBaseURL
	}
	return SandboxBaseURL
}

type Endpoint struct {
	exec    *httpclient.Executor
	baseURL string
	creds   domain.Credentials
	log     *zap.Logger
	newRef  func() string
}

type Option func(*Endpoint)

// WithBaseURL points the endpoint at another host (tests, proxies).
func WithBaseURL(u string) Option {
	return func(e *Endpoint) {
		if u != "" {
			e.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithExecutor(x *httpclient.Executor) Option {
	return func(e *Endpoint) {
		if x != nil {
			e.exec = x
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Endpoint) {
		if l != nil {
			e.log = l
		}
	}
}

func New(cfg domain.Config, opts ...Option) *Endpoint {
	e := &Endpoint{
		exec:    httpclient.NewExecutor(),
		baseURL: BaseURL(cfg.Environment),
		creds:   cfg.Credentials,
		log:     zap.NewNop(),
		newRef:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.CarrierEndpoint = (*Endpoint)(nil)

// Rate posts one rating call. The caller's request is not modified.
func (e *Endpoint) Rate(ctx context.Context, req carrier.RateRequest) (carrier.RateResponse, error) {
	req.Request.TransactionReference = &carrier.TransactionReference{CustomerContext: e.newRef()}

	var reply rateReply
	env := rateEnvelope{UPSSecurity: newSecurity(e.creds), RateRequest: req}
	if err := e.post(ctx, RatePath, env, &reply); err != nil {
		return carrier.RateResponse{}, err
	}
	if reply.RateResponse == nil {
		return carrier.RateResponse{}, decodeError("response has no RateResponse", nil)
	}
	return *reply.RateResponse, nil
}

// ValidateAddress posts one address validation call.
func (e *Endpoint) ValidateAddress(ctx context.Context, req carrier.AddressValidationRequest) (carrier.AddressValidationResponse, error) {
	req.Request.TransactionReference = &carrier.TransactionReference{CustomerContext: e.newRef()}

	var reply xavReply
	env := xavEnvelope{UPSSecurity: newSecurity(e.creds), XAVRequest: req}
	if err := e.post(ctx, XAVPath, env, &reply); err != nil {
		return carrier.AddressValidationResponse{}, err
	}
	if reply.XAVResponse == nil {
		return carrier.AddressValidationResponse{}, decodeError("response has no XAVResponse", nil)
	}
	return *reply.XAVResponse, nil
}

func (e *Endpoint) post(ctx context.Context, path string, payload any, out any) error {
	httpReq, err := httpclient.BuildJSONRequest(ctx, http.MethodPost, e.baseURL+path, payload, nil)
	if err != nil {
		return err
	}

	res, err := e.exec.Do(ctx, httpReq)
	if err != nil {
		te := domain.NewTransportError(-1, err)
		e.log.Warn("carrier.request",
			zap.String("path", path),
			zap.Duration("duration", res.Duration),
			zap.String("kind", string(te.Kind)),
			zap.Error(err),
		)
		return te
	}

	e.log.Debug("carrier.request",
		zap.String("path", path),
		zap.Int("status", res.Status),
		zap.Duration("duration", res.Duration),
		zap.Int("bytes", len(res.BodyBytes)),
		zap.Bool("truncated", res.Truncated),
	)

	if f, ok := parseFault(res.BodyBytes); ok {
		msg := f.Description
		if msg == "" {
			msg = "carrier fault"
		}
		return &domain.TransportError{
			Index:      -1,
			Kind:       domain.TransportCarrierStatus,
			StatusCode: f.Code,
			Message:    msg,
		}
	}

	if res.Status < 200 || res.Status > 299 {
		return &domain.TransportError{
			Index:      -1,
			Kind:       domain.TransportHTTP,
			StatusCode: strconv.Itoa(res.Status),
			Message:    http.StatusText(res.Status),
		}
	}

	if res.Truncated {
		return decodeError(fmt.Sprintf("response body exceeds %d bytes", len(res.BodyBytes)), nil)
	}

	if err := json.Unmarshal(res.BodyBytes, out); err != nil {
		return decodeError("invalid response body", err)
	}
	return nil
}

func decodeError(msg string, err error) *domain.TransportError {
	return &domain.TransportError{
		Index:   -1,
		Kind:    domain.TransportDecode,
		Message: msg,
		Err:     err,
	}
}
