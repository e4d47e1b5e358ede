// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtrie

// Package config resolves pathtrie command settings from flags, environment and config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/woozymasta/pathtrie"
)

// Config keys, shared by flags, environment variables and config file.
const (
	KeyFormat   = "format"
	KeyWildcard = "wildcard"
	KeyNoMatch  = "no-match"
	KeyLogLevel = "log-level"
	KeyVerbose  = "verbose"
)

const (
	envPrefix      = "PATHTRIE"
	configName     = ".pathtrie"
	configType     = "yaml"
	defaultLogName = "info"
)

// ErrInvalidConfig indicates an unusable configuration value.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved command configuration.
type Config struct {
	// ConfigFile is the config file actually read, empty when none was found.
	ConfigFile string `yaml:"-"`
	// Format is the output format.
	Format pathtrie.Format `yaml:"format"`
	// Matcher holds wildcard and no-match label settings.
	Matcher pathtrie.MatcherOptions `yaml:"matcher"`
	// LogLevel is the logger threshold.
	LogLevel log.Level `yaml:"log_level"`
}

// Load resolves configuration.
//
// Precedence: flags > PATHTRIE_* environment > config file > defaults.
// When cfgFile is empty, $HOME/.pathtrie.yaml is read if it exists.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			v.AddConfigPath(home)
		}

		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: read config file: %w", ErrInvalidConfig, err)
		}
	}

	return resolve(v)
}

// setDefaults registers default values for every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, string(pathtrie.FormatText))
	v.SetDefault(KeyWildcard, pathtrie.Wildcard)
	v.SetDefault(KeyNoMatch, pathtrie.NoMatch)
	v.SetDefault(KeyLogLevel, defaultLogName)
	v.SetDefault(KeyVerbose, false)
}

// resolve validates raw values and converts them to Config.
func resolve(v *viper.Viper) (Config, error) {
	format, err := pathtrie.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	wildcard := v.GetString(KeyWildcard)
	if strings.TrimSpace(wildcard) == "" || strings.Contains(wildcard, ",") {
		return Config{}, fmt.Errorf("%w: wildcard %q must be non-blank and must not contain ','", ErrInvalidConfig, wildcard)
	}

	noMatch := v.GetString(KeyNoMatch)
	if strings.TrimSpace(noMatch) == "" {
		return Config{}, fmt.Errorf("%w: no-match label must be non-blank", ErrInvalidConfig)
	}

	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	if v.GetBool(KeyVerbose) {
		level = log.DebugLevel
	}

	return Config{
		ConfigFile: v.ConfigFileUsed(),
		Format:     format,
		Matcher: pathtrie.MatcherOptions{
			Wildcard: wildcard,
			NoMatch:  noMatch,
		},
		LogLevel: level,
	}, nil
}
