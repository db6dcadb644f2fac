package config

import (
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lukehollenback/mbx/constants"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	EnvEndpoint  = "BINANCE_ENDPOINT"
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
	EnvLogLevel  = "MBX_LOG_LEVEL"

	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "info"
)

type Config struct {
	Exchange ExchangeConfig `yaml:"exchange"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ExchangeConfig struct {
	Endpoint     string        `yaml:"endpoint"`
	Key          string        `yaml:"key"`
	Secret       string        `yaml:"secret"`
	Timeout      time.Duration `yaml:"timeout"`
	StrictErrors bool          `yaml:"strict_errors"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

func Default() *Config {
	return &Config{
		Exchange: ExchangeConfig{
			Endpoint: constants.DefaultEndpoint,
			Timeout:  DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
			Color: true,
		},
	}
}

//
// Load builds the configuration from defaults, then the YAML file at the provided path (skipped
// when the path is empty), then a ".env" file in the working directory (if any), then the process
// environment. Later sources win.
//
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}

		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvEndpoint, &c.Exchange.Endpoint},
		{EnvAPIKey, &c.Exchange.Key},
		{EnvAPISecret, &c.Exchange.Secret},
		{EnvLogLevel, &c.Logging.Level},
	}

	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.dst = v
		}
	}
}

//
// Validate checks the settings that can be checked without talking to the exchange. Credentials
// are deliberately not required here: public endpoints work without them.
//
func (c *Config) Validate() error {
	u, err := url.Parse(c.Exchange.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("invalid exchange endpoint %q", c.Exchange.Endpoint)
	}

	if c.Exchange.Timeout < 0 {
		return errors.Errorf("exchange timeout must not be negative (got %s)", c.Exchange.Timeout)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "invalid logging level")
	}

	return nil
}

func (c *ExchangeConfig) HasCredentials() bool {
	return c.Key != "" && c.Secret != ""
}
