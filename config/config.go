// Package config holds the TOML run configuration of the molmatch command.
//
// A configuration file looks like:
//
//	[match]
//	attributes = ["element", "atomname"]
//	max_matches = 10
//
//	[log]
//	level = "debug"
//	format = "logfmt"
//	timestamps = true
//	logfile = "/var/log/molmatch.log"
//	max_log_size = 10   # megabytes
//	max_log_age = 7     # days
//
//	[input]
//	exclude = ["SOL", "NA", "CL"]
//	ignore_h = false
//	model = 0
//
// Every key is optional; Default supplies the missing values. Unknown keys are
// rejected so typos do not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/molmatch/graphio"
)

// ErrBadConfig indicates an invalid or unreadable configuration.
var ErrBadConfig = errors.New("config: bad configuration")

// Config is the complete run configuration.
type Config struct {
	Match MatchConfig `toml:"match"`
	Log   LogConfig   `toml:"log"`
	Input InputConfig `toml:"input"`
}

// MatchConfig selects what the matchers compare.
type MatchConfig struct {
	// Attributes are the node attributes compared by the MCS commands.
	Attributes []string `toml:"attributes"`

	// MaxMatches caps the printed matches; 0 prints all.
	MaxMatches int `toml:"max_matches"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"` // text, json or logfmt
	Timestamps bool   `toml:"timestamps"`

	// Logfile, when set, replaces the command's stderr with a rotating file.
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"`
	MaxAge  int    `toml:"max_log_age"`
}

// InputConfig configures structure file readers.
type InputConfig struct {
	Exclude []string `toml:"exclude"`
	IgnoreH bool     `toml:"ignore_h"`
	Model   int      `toml:"model"`
}

var formatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Match: MatchConfig{Attributes: []string{"element"}},
		Log:   LogConfig{Level: "info", Format: "text", Timestamps: true},
		Input: InputConfig{Exclude: []string{"SOL"}},
	}
}

// Load reads the TOML file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: decode %s: %w", ErrBadConfig, path, err)
	}

	return cfg, finish(cfg, md)
}

// Parse decodes TOML text on top of Default and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return cfg, finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) error {
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrBadConfig, strings.Join(keys, ", "))
	}

	return cfg.Validate()
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	for _, a := range c.Match.Attributes {
		if a == "" {
			return fmt.Errorf("%w: empty attribute name", ErrBadConfig)
		}
	}
	if c.Match.MaxMatches < 0 {
		return fmt.Errorf("%w: max_matches %d < 0", ErrBadConfig, c.Match.MaxMatches)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrBadConfig, c.Log.Level)
	}
	if _, ok := formatters[c.Log.Format]; !ok {
		return fmt.Errorf("%w: log format %q", ErrBadConfig, c.Log.Format)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("%w: negative log rotation limit", ErrBadConfig)
	}
	if c.Input.Model < 0 {
		return fmt.Errorf("%w: model %d < 0", ErrBadConfig, c.Input.Model)
	}

	return nil
}

// LogOutput returns w, or a rotating writer on c.Log.Logfile when one is set.
// The caller closes the returned writer if it is an io.Closer.
func (c Config) LogOutput(w io.Writer) io.Writer {
	if c.Log.Logfile == "" {
		return w
	}

	return &lumberjack.Logger{
		Filename: c.Log.Logfile,
		MaxSize:  c.Log.MaxSize, // megabytes
		MaxAge:   c.Log.MaxAge,  // days
	}
}

// NewLogger builds the command logger described by c.Log, writing to w.
// Invalid settings fall back to info level and text output.
func (c Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	f, ok := formatters[c.Log.Format]
	if !ok {
		f = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: c.Log.Timestamps,
		Formatter:       f,
	})
}

// PDBOptions translates c.Input into reader options.
func (c Config) PDBOptions() []graphio.PDBOption {
	return []graphio.PDBOption{
		graphio.WithExclude(c.Input.Exclude...),
		graphio.WithIgnoreH(c.Input.IgnoreH),
		graphio.WithModel(c.Input.Model),
	}
}
