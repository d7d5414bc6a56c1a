package carrier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneOrMany_SingleObject(t *testing.T) {
	var resp RateResponse
	body := `{"Response":{"ResponseStatusCode":"1"},"RatedShipment":{"Service":{"Code":"03"}}}`

	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.RatedShipment, 1)
	assert.Equal(t, FlexString("03"), resp.RatedShipment[0].Service.Code)
}

func TestOneOrMany_Array(t *testing.T) {
	var resp RateResponse
	body := `{"Response":{"ResponseStatusCode":1},"RatedShipment":[{"Service":{"Code":"03"}},{"Service":{"Code":12}}]}`

	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.RatedShipment, 2)
	assert.Equal(t, FlexString("12"), resp.RatedShipment[1].Service.Code)
	assert.True(t, resp.Response.Success(), "numeric status code 1 is success")
}

func TestOneOrMany_NullAndMissing(t *testing.T) {
	var resp RateResponse
	require.NoError(t, json.Unmarshal([]byte(`{"RatedShipment":null}`), &resp))
	assert.Empty(t, resp.RatedShipment)
}

func TestFlexBool(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`"1"`:     true,
		`"0"`:     false,
		`""`:      true,
		`null`:    false,
		`"false"`: false,
	}
	for in, want := range cases {
		var f FlexBool
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, bool(f), in)
	}
}

func TestIndicatorMarshalsAsEmptyString(t *testing.T) {
	opts := ShipmentRatingOptions{NegotiatedRatesIndicator: Indicator()}
	b, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"NegotiatedRatesIndicator":""}`, string(b))

	b, err = json.Marshal(ShipmentRatingOptions{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestAddressValidationResponse_Indicators(t *testing.T) {
	body := `{
		"Response":{"ResponseStatusCode":"1","ResponseStatusDescription":"Success"},
		"ValidAddressIndicator":"",
		"AddressClassification":{"Code":"1","Description":"Commercial"},
		"AddressKeyFormat":{"AddressLine":"26601 ALISO CREEK ROAD","PoliticalDivision2":"ALISO VIEJO","CountryCode":"US"}
	}`

	var resp AddressValidationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotNil(t, resp.ValidAddressIndicator)
	assert.Nil(t, resp.AmbiguousAddressIndicator)
	require.Len(t, resp.AddressKeyFormat, 1)
	assert.Equal(t, OneOrMany[string]{"26601 ALISO CREEK ROAD"}, resp.AddressKeyFormat[0].AddressLine)
}

func TestResponseFailureText(t *testing.T) {
	r := Response{ResponseStatusCode: "0", ResponseStatusDescription: "Failure"}
	assert.False(t, r.Success())
	assert.Equal(t, "Failure", r.FailureText())

	r.Error = &ResponseError{ErrorDescription: "Invalid Access License number"}
	assert.Equal(t, "Invalid Access License number", r.FailureText())
}
