package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/aalvaropc/shiprate/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. SHIPRATE_CREDENTIALS_ACCESS_KEY.
const EnvPrefix = "SHIPRATE"

// Load reads the client config at path and overlays environment variables.
// An empty path loads defaults plus environment only.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v, DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			kind := domain.KindInvalidConfig
			if errors.Is(err, fs.ErrNotExist) {
				kind = domain.KindNotFound
			}
			return Settings{}, &domain.OpError{
				Op:   "config.load",
				Kind: kind,
				Path: path,
				Err:  err,
			}
		}
	}

	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Settings{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, fc)
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, s Settings) {
	v.SetDefault("environment", string(s.Client.Environment))
	v.SetDefault("unit_system", string(s.Client.UnitSystem))
	v.SetDefault("credentials.username", "")
	v.SetDefault("credentials.password", "")
	v.SetDefault("credentials.access_key", "")

	v.SetDefault("http.base_url", s.HTTP.BaseURL)
	v.SetDefault("http.timeout", s.HTTP.Timeout)
	v.SetDefault("http.per_call_timeout", s.HTTP.PerCallTimeout)
	v.SetDefault("http.max_concurrency", s.HTTP.MaxConcurrency)
	v.SetDefault("http.requests_per_second", s.HTTP.RequestsPerSecond)
	v.SetDefault("http.burst", s.HTTP.Burst)
	v.SetDefault("http.max_body_bytes", s.HTTP.MaxBodyBytes)

	v.SetDefault("log.level", s.Log.Level)
	v.SetDefault("log.format", s.Log.Format)
	v.SetDefault("log.output", s.Log.Output)
}
