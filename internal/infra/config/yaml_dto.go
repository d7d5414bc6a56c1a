package config

import "time"

// FileConfig mirrors the client config file. Keys use mapstructure names so
// viper can overlay SHIPRATE_* environment variables.
type FileConfig struct {
	Environment string          `mapstructure:"environment"`
	UnitSystem  string          `mapstructure:"unit_system"`
	Credentials FileCredentials `mapstructure:"credentials"`
	HTTP        FileHTTP        `mapstructure:"http"`
	Log         FileLog         `mapstructure:"log"`
}

type FileCredentials struct {
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	AccessKey string `mapstructure:"access_key"`
}

type FileHTTP struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	PerCallTimeout    time.Duration `mapstructure:"per_call_timeout"`
	MaxConcurrency    int           `mapstructure:"max_concurrency"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes"`
}

type FileLog struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
