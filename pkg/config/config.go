// Package config loads envprof's engine configuration.
//
// Configuration is layered, lowest precedence first: built-in
// defaults, an optional envprof.toml next to the profiles directory,
// then ENVPROF_* environment variables. The host application can also
// fill a Config directly when embedding the engine as a library.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/envprof/pkg/errors"
)

// Environment variable names honored by the engine.
const (
	// EnvAppName identifies the profile namespace. Required unless an
	// explicit config dir is given.
	EnvAppName = "ENVPROF_APP_NAME"

	// EnvConfigDir short-circuits config directory derivation.
	EnvConfigDir = "ENVPROF_CONFIG_DIR"

	// EnvPrefix overrides the installation prefix used to derive the
	// config directory when no explicit dir is set.
	EnvPrefix = "ENVPROF_PREFIX"

	// EnvTemplateFile points at a legacy-format default template.
	EnvTemplateFile = "ENVPROF_TEMPLATE_FILE"

	// EnvSchemaFile points at a structured TOML template schema.
	EnvSchemaFile = "ENVPROF_SCHEMA_FILE"

	// EnvInteractive forces interactive mode on or off.
	EnvInteractive = "ENVPROF_INTERACTIVE"
)

// ConfigFileName is the optional per-application settings file looked
// up inside the resolved config directory.
const ConfigFileName = "envprof.toml"

// Config is the engine configuration consumed by store and profile.
type Config struct {
	// AppName identifies the host application and names the config
	// directory (".<app>" or "etc/<app>").
	AppName string `koanf:"app_name"`

	// ConfigDir, when set, is used verbatim and disables prefix-based
	// derivation.
	ConfigDir string `koanf:"config_dir"`

	// Prefix is the installation prefix for derivation. Empty means
	// /usr/local when running as root, the user's home otherwise.
	Prefix string `koanf:"prefix"`

	// Template is the default template text. TemplateFile and
	// SchemaFile load into it; a directly assigned value wins.
	Template     string `koanf:"template"`
	TemplateFile string `koanf:"template_file"`
	SchemaFile   string `koanf:"schema_file"`

	// ExtraPlaceholders names additional placeholder variables
	// resolved from the environment at creation time, beyond the
	// PROFILE and PROFILE_NAME built-ins.
	ExtraPlaceholders []string `koanf:"extra_placeholders"`

	// ExtraVariables names variables cleared before each load in
	// addition to the template vocabulary.
	ExtraVariables []string `koanf:"extra_variables"`

	// Interactive gates prompting, selection, and editor launching.
	Interactive bool `koanf:"interactive"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app_name":    "",
		"config_dir":  "",
		"prefix":      "",
		"interactive": isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// Load builds the engine configuration from defaults, the optional
// settings file at configFilePath (empty skips the layer, as does a
// missing file), and ENVPROF_* environment variables.
func Load(configFilePath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load defaults")
	}

	if configFilePath != "" {
		if _, err := os.Stat(configFilePath); err == nil {
			if err := k.Load(file.Provider(configFilePath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfig, "failed to load %s", configFilePath)
			}
		}
	}

	err := k.Load(env.Provider("ENVPROF_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ENVPROF_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load environment variables")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to unmarshal configuration")
	}

	if err := resolveTemplate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveTemplate reads TemplateFile into Template when no inline
// template was given. SchemaFile is left to the caller (pkg/profile)
// because parsing it needs the template package.
func resolveTemplate(cfg *Config) error {
	if cfg.Template != "" || cfg.TemplateFile == "" {
		return nil
	}
	data, err := os.ReadFile(cfg.TemplateFile)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfig, "failed to read template file %s", cfg.TemplateFile)
	}
	cfg.Template = string(data)
	return nil
}

// Validate checks that the configuration can identify a config
// directory at all.
func (c *Config) Validate() error {
	if c.AppName == "" && c.ConfigDir == "" {
		return errors.NewConfigError(
			fmt.Sprintf("application name is not set; set %s or %s", EnvAppName, EnvConfigDir))
	}
	return nil
}
