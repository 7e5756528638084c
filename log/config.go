package log

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level   string
	App     string
	Colored string
	Vivid   string
	Logging string
	Source  string
	File    string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
		Settings: Settings{
			Level: LevelOff.String(),
			App:   DefaultApp,
		},
	}
}

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewFacade] to create a [Facade].
type Config struct {
	// File is an optional YAML settings file. Flags set on the command line
	// take precedence over its values.
	File  string
	Flags Flags
	Settings
	Source bool

	flags *pflag.FlagSet
}

// NewConfig returns a new [Config] with default flag names and settings
// matching a fresh [Facade].
func NewConfig() *Config {
	f := Flags{
		Level:   "log-level",
		App:     "log-app",
		Colored: "log-color",
		Vivid:   "log-vivid",
		Logging: "log-notices",
		Source:  "log-source",
		File:    "log-config",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	c.flags = flags

	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("minimum log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.App, c.Flags.App, c.App, "application name shown in every line")
	flags.BoolVar(&c.Colored, c.Flags.Colored, c.Colored, "enable pale colored output")
	flags.BoolVar(&c.Vivid, c.Flags.Vivid, c.Vivid, "enable vivid colored output")
	flags.BoolVar(&c.Logging, c.Flags.Logging, c.Logging, "announce log configuration changes")
	flags.BoolVar(&c.Source, c.Flags.Source, c.Source, "append the call site file:line to every line")
	flags.StringVar(&c.File, c.Flags.File, c.File, "path to a YAML log settings file")
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering log-level completion: %w", err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.File,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering log-config completion: %w", err)
	}

	return nil
}

// LoadFile reads the YAML settings file at path into c. Values for flags that
// were explicitly set on the registered [*pflag.FlagSet] are kept.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParseConfig, path, err)
	}

	if s.Level != "" && !c.changed(c.Flags.Level) {
		c.Level = s.Level
	}

	if s.App != "" && !c.changed(c.Flags.App) {
		c.App = s.App
	}

	if !c.changed(c.Flags.Colored) {
		c.Colored = s.Colored
	}

	if !c.changed(c.Flags.Vivid) {
		c.Vivid = s.Vivid
	}

	if !c.changed(c.Flags.Logging) {
		c.Logging = s.Logging
	}

	return nil
}

func (c *Config) changed(name string) bool {
	return c.flags != nil && c.flags.Changed(name)
}

// NewFacade creates a [Facade] writing to console, loading [Config.File]
// first when set, and applies the resulting settings.
func (c *Config) NewFacade(console Console, opts ...Option) (*Facade, error) {
	if c.File != "" {
		err := c.LoadFile(c.File)
		if err != nil {
			return nil, err
		}
	}

	f := New(console, append([]Option{WithSource(c.Source)}, opts...)...)
	f.Apply(c.Settings)

	return f, nil
}

// ParseSettings decodes a YAML settings document and validates it against
// [Schema]. Level names are not checked here; an unrecognized name becomes
// [LevelUnknown] when applied.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings

	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return s, fmt.Errorf("decode yaml: %w", err)
	}

	if doc == nil {
		return s, nil
	}

	resolved, err := resolvedSchema()
	if err != nil {
		return s, err
	}

	err = resolved.Validate(doc)
	if err != nil {
		return s, fmt.Errorf("validate: %w", err)
	}

	err = yaml.UnmarshalWithOptions(data, &s, yaml.Strict())
	if err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}

	return s, nil
}

// Schema returns the JSON Schema describing a settings file.
func Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Settings](nil)
	if err != nil {
		return nil, fmt.Errorf("generate settings schema: %w", err)
	}

	// Reject unknown keys so that typos are reported rather than ignored.
	schema.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}

	return schema, nil
}

// SchemaJSON returns [Schema] as indented JSON.
func SchemaJSON() ([]byte, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings schema: %w", err)
	}

	return out, nil
}

func resolvedSchema() (*jsonschema.Resolved, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve settings schema: %w", err)
	}

	return resolved, nil
}
