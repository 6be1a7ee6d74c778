package runtimeconfig

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MD2HTML_LOGGING_LEVEL.
const EnvPrefix = "MD2HTML"

// Configuration keys shared by viper defaults, env lookups, and bound flags.
const (
	KeyLoggingProvider  = "logging.provider"
	KeyLoggingLevel     = "logging.level"
	KeyLoggingFormat    = "logging.format"
	KeyLoggingAddSource = "logging.add_source"
	KeyStripFrontMatter = "markdown.strip_front_matter"
	KeyCommandTimeout   = "commands.timeout"
)

// NewViper returns a viper instance seeded with DefaultConfig and wired to
// read MD2HTML_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault(KeyLoggingProvider, defaults.Logging.Provider)
	v.SetDefault(KeyLoggingLevel, defaults.Logging.Level)
	v.SetDefault(KeyLoggingFormat, defaults.Logging.Format)
	v.SetDefault(KeyLoggingAddSource, defaults.Logging.AddSource)
	v.SetDefault(KeyStripFrontMatter, defaults.Markdown.StripFrontMatter)
	v.SetDefault(KeyCommandTimeout, defaults.Commands.Timeout)
	return v
}

// Load materialises a validated Config from v.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = NewViper()
	}
	cfg := Config{
		Logging: LoggingConfig{
			Provider:  v.GetString(KeyLoggingProvider),
			Level:     v.GetString(KeyLoggingLevel),
			Format:    v.GetString(KeyLoggingFormat),
			AddSource: v.GetBool(KeyLoggingAddSource),
		},
		Markdown: MarkdownConfig{
			StripFrontMatter: v.GetBool(KeyStripFrontMatter),
		},
		Commands: CommandsConfig{
			Timeout: v.GetDuration(KeyCommandTimeout),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
