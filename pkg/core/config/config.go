// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     config
// Description: Configuration loading from TOML/YAML files and environment
// Created:     2025-12-06
// Modified:    2026-10-14
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	dterror "github.com/msto63/datetool/foundation/core/error"
)

// EnvPrefix is the prefix of all environment overrides, e.g. DATETOOL_UNIT
const EnvPrefix = "DATETOOL"

// Config holds the complete application configuration
type Config struct {
	General     GeneralConfig     `toml:"general" yaml:"general"`
	Calculation CalculationConfig `toml:"calculation" yaml:"calculation"`
	Output      OutputConfig      `toml:"output" yaml:"output"`

	// Source is the file the configuration was read from, empty for
	// built-in defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging and time zone settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn error fatal"`
	LogFormat string `toml:"log_format" yaml:"log_format" validate:"oneof=text json"`

	// Timezone is the IANA zone for dates given without an offset. Empty
	// means the system's local zone.
	Timezone string `toml:"timezone" yaml:"timezone" validate:"omitempty,timezone"`
}

// CalculationConfig holds engine defaults
type CalculationConfig struct {
	DefaultUnit string `toml:"default_unit" yaml:"default_unit" validate:"oneof=default seconds minutes hours days weeks years"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" validate:"oneof=text json yaml pretty"`
}

// envOverrides lists the variables that replace file values when set.
// Names derive from the field names (DATETOOL_LOG_LEVEL); explicit
// envconfig tags would also match the unprefixed variable.
type envOverrides struct {
	Config    string
	LogLevel  string `split_words:"true"`
	LogFormat string `split_words:"true"`
	Timezone  string
	Unit      string
	Output    string
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPaths returns the locations searched when no file is named
func DefaultPaths() []string {
	paths := []string{
		"./configs/datetool.toml",
		"./datetool.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "datetool", "config.toml"))
	}
	return paths
}

// Load loads configuration from a TOML or YAML file, then applies
// environment overrides and validates the result
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, dterror.Newf("config file not found: %s", path).
			WithCode(dterror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dterror.Wrap(err, "failed to read config").
			WithCode(dterror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, err
	}
	cfg.Source = path

	return finish(&cfg)
}

// LoadFromEnv loads the file named by DATETOOL_CONFIG or the first existing
// default path. Without a file it returns the defaults with environment
// overrides applied.
func LoadFromEnv() (*Config, error) {
	env, err := readEnv()
	if err != nil {
		return nil, err
	}
	if env.Config != "" {
		return Load(env.Config)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return finish(&Config{})
}

// Location resolves General.Timezone
func (c *Config) Location() (*time.Location, error) {
	if c.General.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return nil, dterror.Wrap(err, "unknown time zone").
			WithCode(dterror.CodeInvalidConfig).
			WithOperation("config.Location").
			WithDetail("timezone", c.General.Timezone)
	}
	return loc, nil
}

// Validate checks every field against its allowed values
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return dterror.Wrap(err, "config validation failed").
			WithCode(dterror.CodeValidationFailed).
			WithOperation("config.Validate")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	sort.Strings(problems)

	result := dterror.New("invalid configuration: " + strings.Join(problems, "; ")).
		WithCode(dterror.CodeValidationFailed).
		WithOperation("config.Validate")
	if c.Source != "" {
		result = result.WithDetail("path", c.Source)
	}
	return result
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		var md toml.MetaData
		md, err = toml.Decode(string(data), cfg)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return dterror.Newf("unsupported config format %q", filepath.Ext(path)).
			WithCode(dterror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	if err != nil {
		return dterror.Wrap(err, "failed to parse config").
			WithCode(dterror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	return nil
}

// finish applies defaults, environment overrides and validation
func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()

	env, err := readEnv()
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnv() (envOverrides, error) {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return env, dterror.Wrap(err, "failed to read environment").
			WithCode(dterror.CodeEnvironmentError).
			WithOperation("config.LoadFromEnv")
	}
	return env, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Calculation.DefaultUnit == "" {
		c.Calculation.DefaultUnit = "default"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

func (c *Config) applyEnv(env envOverrides) {
	override := func(dst *string, value string) {
		if value != "" {
			*dst = strings.ToLower(value)
		}
	}
	override(&c.General.LogLevel, env.LogLevel)
	override(&c.General.LogFormat, env.LogFormat)
	override(&c.Calculation.DefaultUnit, env.Unit)
	override(&c.Output.Format, env.Output)

	// zone names are case-sensitive
	if env.Timezone != "" {
		c.General.Timezone = env.Timezone
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describe turns a field error into "general.log_level: must be one of ..."
func describe(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: %q must be one of [%s]", ns, fe.Value(), fe.Param())
	case "timezone":
		return fmt.Sprintf("%s: %q is not a known time zone", ns, fe.Value())
	default:
		return fmt.Sprintf("%s: failed %s", ns, fe.Tag())
	}
}
