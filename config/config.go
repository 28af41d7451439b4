// Package config loads the optional YAML configuration of an add-in library.
//
// The file is looked up once when the library is loaded by the host. Every
// key has a default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/reglet-dev/addin-sdk/go/application/component"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	sdklog "github.com/reglet-dev/addin-sdk/go/log"
)

// EnvPath names the environment variable holding the configuration file path.
const EnvPath = "ADDIN_CONFIG"

// Config is the library configuration.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Component ComponentConfig `koanf:"component"`
}

// LogConfig controls where dispatch failures are reported.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	// Source is the source string shown in the host error log.
	Source string `koanf:"source" validate:"required"`
	// Host routes records to the host error log once the host connection is known.
	Host      bool `koanf:"host"`
	AddSource bool `koanf:"add_source"`
}

// ComponentConfig holds settings applied to every object the library creates.
type ComponentConfig struct {
	// Info is the version reported by GetInfo.
	Info int `koanf:"info" validate:"gte=1000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Source: "AddIn",
			Host:   true,
		},
		Component: ComponentConfig{
			Info: component.DefaultInfo,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// LoadFromEnv loads the file named by EnvPath.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &sdkerrors.ConfigError{
			Field: strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config.")),
			Err:   fmt.Errorf("failed %q validation (value %v)", fe.Tag(), fe.Value()),
		}
	}
	return &sdkerrors.ConfigError{Err: err}
}

// SlogLevel converts Level.
func (c LogConfig) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn
	}
	return l
}

// ComponentOptions turns the configuration into options for every object.
func (c Config) ComponentOptions() []component.Option {
	opts := []component.Option{component.WithInfo(c.Component.Info)}
	if c.Log.Host {
		opts = append(opts, component.WithHostLog(
			sdklog.WithLevel(c.Log.SlogLevel()),
			sdklog.WithSource(c.Log.AddSource),
			sdklog.WithMessageSource(c.Log.Source),
		))
	} else {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     c.Log.SlogLevel(),
			AddSource: c.Log.AddSource,
		})
		opts = append(opts, component.WithLogger(slog.New(h)))
	}
	return opts
}
