// Package plan turns a service selection into the list of carrier calls to make.
package plan

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/shiprate/internal/domain"
)

// AnyService is the plan entry for a call that leaves the service open.
const AnyService = ""

// Plan returns one entry per carrier call, in call order.
// Multiple codes keep their order with duplicates removed (first wins).
func Plan(sel domain.ServiceSelector) ([]string, error) {
	switch sel.Kind {
	case domain.SelectAny:
		return []string{AnyService}, nil

	case domain.SelectSingle:
		if len(sel.Codes) != 1 || strings.TrimSpace(sel.Codes[0]) == "" {
			return nil, &domain.ValidationError{Field: "service", Msg: "must not be blank"}
		}
		return []string{sel.Codes[0]}, nil

	case domain.SelectMultiple:
		if len(sel.Codes) == 0 {
			return nil, &domain.ValidationError{Field: "services", Msg: "must have at least 1 item(s)"}
		}
		seen := make(map[string]struct{}, len(sel.Codes))
		out := make([]string, 0, len(sel.Codes))
		for i, code := range sel.Codes {
			if strings.TrimSpace(code) == "" {
				return nil, &domain.ValidationError{Field: fmt.Sprintf("services[%d]", i), Msg: "must not be blank"}
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("plan: unknown selector kind %d", sel.Kind)
	}
}
