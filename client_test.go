package shiprate_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/aalvaropc/shiprate"
)

const faultBody = `{"Fault":{"faultcode":"Client","faultstring":"An exception has been raised as a result of client data.",
"detail":{"Errors":{"ErrorDetail":{"Severity":"Hard","PrimaryErrorCode":{"Code":"111100",
"Description":"The requested service is invalid from the selected origin."}}}}}}`

// upsServer answers Rate calls by requested service code; "04" is rejected with a fault.
func upsServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/rest/Rate":
			var env struct {
				RateRequest shiprate.CarrierRateRequest `json:"RateRequest"`
			}
			if err := json.Unmarshal(body, &env); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			code := env.RateRequest.ServiceCode()
			if code == "04" {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, faultBody)
				return
			}
			io.WriteString(w, `{"RateResponse":{"Response":{"ResponseStatusCode":"1","ResponseStatusDescription":"Success"},
"RatedShipment":{"Service":{"Code":"`+code+`"},"TotalCharges":{"CurrencyCode":"USD","MonetaryValue":"12.34"},
"NegotiatedRates":{"NetSummaryCharges":{"GrandTotal":{"CurrencyCode":"USD","MonetaryValue":"10.00"}}}}}}`)
		case "/rest/XAV":
			io.WriteString(w, `{"XAVResponse":{"Response":{"ResponseStatusCode":"1","ResponseStatusDescription":"Success"},
"ValidAddressIndicator":"","AddressClassification":{"Code":"1","Description":"Commercial"},
"AddressKeyFormat":{"AddressLine":"100 MAIN ST","PoliticalDivision2":"ATLANTA","PoliticalDivision1":"GA",
"PostcodePrimaryLow":"30301","CountryCode":"US"}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, opts ...shiprate.Option) *shiprate.Client {
	t.Helper()
	cfg := shiprate.Config{
		Environment: shiprate.Sandbox,
		UnitSystem:  shiprate.Imperial,
		Credentials: shiprate.Credentials{Username: "u", Password: "p", AccessKey: "k"},
	}
	c, err := shiprate.New(cfg, append([]shiprate.Option{shiprate.WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c
}

func shipment() shiprate.ShipmentDescription {
	return shiprate.ShipmentDescription{
		Shipper: shiprate.Sender{
			Name:    "Acme",
			Address: shiprate.Address{AddressLine1: "100 Main St", PostalCode: "30301", CountryCode: "US"},
		},
		ShipTo: shiprate.Recipient{
			CompanyName: "Globex",
			Address: shiprate.RecipientAddress{Address: shiprate.Address{
				AddressLine1: "200 Market St", PostalCode: "80202", CountryCode: "US",
			}},
		},
		Packages: []shiprate.Package{{Weight: 3}},
	}
}

func TestNew_RejectsUnknownEnvironment(t *testing.T) {
	_, err := shiprate.New(shiprate.Config{Environment: "staging", UnitSystem: shiprate.Imperial})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")

	_, err = shiprate.New(shiprate.Config{Environment: shiprate.Live, UnitSystem: "furlongs"})
	require.Error(t, err)
}

func TestNew_DoesNotCheckCredentials(t *testing.T) {
	c, err := shiprate.New(shiprate.Config{Environment: shiprate.Live, UnitSystem: shiprate.Metric})
	require.NoError(t, err)
	assert.Equal(t, shiprate.Metric, c.Config().UnitSystem)
}

func TestRates_SingleService(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls))

	desc := shipment()
	desc.Service = "03"
	res, err := c.Rates(context.Background(), desc, shiprate.RateOptions{})
	require.NoError(t, err)

	require.Len(t, res.Rates, 1)
	assert.Equal(t, "03", res.Rates[0].ServiceCode)
	assert.Equal(t, "UPS Ground", res.Rates[0].ServiceName)
	assert.Equal(t, "12.34", res.Rates[0].TotalCharges.Amount)
	assert.Nil(t, res.Rates[0].NegotiatedTotal)
	assert.Equal(t, "1", res.Status.Code)
	assert.EqualValues(t, 1, calls.Load())
}

func TestRates_Negotiated(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls))

	desc := shipment()
	desc.Service = "03"
	res, err := c.Rates(context.Background(), desc, shiprate.RateOptions{NegotiatedRates: true})
	require.NoError(t, err)
	require.Len(t, res.Rates, 1)
	require.NotNil(t, res.Rates[0].NegotiatedTotal)
	assert.Equal(t, "10.00", res.Rates[0].NegotiatedTotal.Amount)
}

func TestRates_PartialFailure(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls), shiprate.WithMaxConcurrency(1))

	desc := shipment()
	desc.Services = []string{"03", "04"}
	res, err := c.Rates(context.Background(), desc, shiprate.RateOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shiprate.ErrDispatch))

	var de *shiprate.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []int{1}, de.FailedIndices)
	require.NotNil(t, de.Partial)

	var te *shiprate.TransportError
	require.ErrorAs(t, de.Failures[1], &te)
	assert.Equal(t, "111100", te.StatusCode)
	assert.Contains(t, te.Message, "invalid from the selected origin")

	require.Len(t, res.Rates, 1)
	assert.Equal(t, "03", res.Rates[0].ServiceCode)
	assert.EqualValues(t, 2, calls.Load())
}

func TestRates_ValidationBeforeAnyCall(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls))

	desc := shipment()
	desc.ShipTo.Address.PostalCode = ""
	_, err := c.Rates(context.Background(), desc, shiprate.RateOptions{})

	var ve *shiprate.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "ship_to.address.postal_code", ve.Field)
	assert.EqualValues(t, 0, calls.Load())
}

func TestRates_RateLimitedClientStillCompletes(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls), shiprate.WithRateLimit(1000, 2))

	desc := shipment()
	desc.Services = []string{"01", "02", "03"}
	res, err := c.Rates(context.Background(), desc, shiprate.RateOptions{})
	require.NoError(t, err)
	require.Len(t, res.Rates, 3)
	assert.Equal(t, "01", res.Rates[0].ServiceCode)
	assert.Equal(t, "03", res.Rates[2].ServiceCode)
}

func TestValidateAddress(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls))

	res, err := c.ValidateAddress(context.Background(), shiprate.AddressValidationRequest{
		Address:       shiprate.Address{AddressLine1: "100 Main St", PostalCode: "30301", CountryCode: "US"},
		RequestOption: shiprate.OptionValidationAndClassification,
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.False(t, res.Ambiguous)
	assert.Equal(t, "Commercial", res.Classification.Description)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "ATLANTA", res.Candidates[0].City)
	assert.Equal(t, []string{"100 MAIN ST"}, res.Candidates[0].AddressLines)
}

func TestValidateAddress_MissingPostalCode(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, upsServer(t, &calls))

	_, err := c.ValidateAddress(context.Background(), shiprate.AddressValidationRequest{
		Address:       shiprate.Address{AddressLine1: "100 Main St", CountryCode: "US"},
		RequestOption: shiprate.OptionValidation,
	})
	var ve *shiprate.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "postal_code", ve.Field)
	assert.EqualValues(t, 0, calls.Load())
}
