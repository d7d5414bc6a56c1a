package upsapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Paths into a carrier Fault body. ErrorDetail may be an object or an array,
// hence the recursive descent.
const (
	faultPath            = "$.Fault"
	faultDescriptionPath = "$..PrimaryErrorCode.Description"
	faultCodePath        = "$..PrimaryErrorCode.Code"
	faultStringPath      = "$.Fault.faultstring"
)

type fault struct {
	Code        string
	Description string
}

// parseFault returns the carrier fault carried by body, if any.
// Bodies that are not JSON or carry no Fault yield ok=false.
func parseFault(body []byte) (fault, bool) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fault{}, false
	}
	if _, err := jsonpath.Get(faultPath, doc); err != nil {
		return fault{}, false
	}

	f := fault{
		Code:        lookup(doc, faultCodePath),
		Description: lookup(doc, faultDescriptionPath),
	}
	if f.Description == "" {
		f.Description = lookup(doc, faultStringPath)
	}
	return f, true
}

func lookup(doc any, expr string) string {
	val, err := jsonpath.Get(expr, doc)
	if err != nil || isEmptyValue(val) {
		return ""
	}
	return toString(val)
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// toString flattens a jsonpath match. Several matches are joined with "; ".
func toString(v any) string {
	if arr, ok := v.([]any); ok {
		parts := make([]string, 0, len(arr))
		for _, item := range arr {
			if s := toString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	}

	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		return fmt.Sprint(t)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
