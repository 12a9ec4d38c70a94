// Package config loads the configuration of the bigint command from flags,
// BIGINT_* environment variables and an optional YAML configuration file, in
// that order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	TextOutput = "text"
	YAMLOutput = "yaml"
)

// Config holds the settings of the bigint command.
type Config struct {
	LogLevel    string
	LogEncoding string
	Output      string
}

// flag names bound to configuration keys
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-encoding": "log.encoding",
	"output":       "output",
}

// Load builds the configuration. Flags present in flags are bound to their
// keys; the "config" flag, if set, names a YAML file to read.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("output", TextOutput)

	v.SetEnvPrefix("BIGINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", name)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "reading config file %s", f.Value.String())
			}
		}
	}

	c := &Config{
		LogLevel:    v.GetString("log.level"),
		LogEncoding: v.GetString("log.encoding"),
		Output:      v.GetString("output"),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Output {
	case TextOutput, YAMLOutput:
	default:
		return errors.Errorf("invalid output format %q", c.Output)
	}
	switch c.LogEncoding {
	case "console", "json":
	default:
		return errors.Errorf("invalid log encoding %q", c.LogEncoding)
	}
	return nil
}
