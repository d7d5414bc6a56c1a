package carrier

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var jsonNull = []byte("null")

// OneOrMany decodes either a single JSON value or an array of them.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		*o = nil
		return nil
	}

	if trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*o = many
		return nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*o = OneOrMany[T]{one}
	return nil
}

// FlexString decodes a JSON string or number into its textual form.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, jsonNull) {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// FlexBool decodes true/false, "true"/"false", "1"/"0" and the empty-string presence marker (true).
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, jsonNull) {
		*f = false
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		if str == "" {
			*f = true
			return nil
		}
		v, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		*f = FlexBool(v)
		return nil
	}
	var v bool
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*f = FlexBool(v)
	return nil
}

// Indicator returns a presence marker: the carrier treats an empty-string field as "set".
func Indicator() *string {
	s := ""
	return &s
}
