package domain

import "fmt"

// Environment selects the carrier host a client talks to.
type Environment string

const (
	EnvironmentLive    Environment = "live"
	EnvironmentSandbox Environment = "sandbox"
)

// UnitSystem is the unit system package weights and dimensions are expressed in.
type UnitSystem string

const (
	Imperial UnitSystem = "imperial"
	Metric   UnitSystem = "metric"
)

// Credentials are passed through to the transport untouched.
// They are never validated locally; bad credentials surface on the first call.
type Credentials struct {
	Username  string
	Password  string
	AccessKey string
}

// Config is the per-client configuration. It is built once and never mutated.
type Config struct {
	Environment Environment
	Credentials Credentials
	UnitSystem  UnitSystem
}

// DefaultConfig targets the sandbox with imperial units.
func DefaultConfig() Config {
	return Config{
		Environment: EnvironmentSandbox,
		UnitSystem:  Imperial,
	}
}

// ParseEnvironment accepts "live" or "sandbox" (case-sensitive, as written in config files).
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvironmentLive, EnvironmentSandbox:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("unsupported environment %q (expected live|sandbox)", s)
	}
}

// ParseUnitSystem accepts "imperial" or "metric".
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(s) {
	case Imperial, Metric:
		return UnitSystem(s), nil
	default:
		return "", fmt.Errorf("unsupported unit system %q (expected imperial|metric)", s)
	}
}

// MaxDimension is the largest package side accepted in the given unit system.
func (u UnitSystem) MaxDimension() float64 {
	if u == Metric {
		return 270
	}
	return 108
}
