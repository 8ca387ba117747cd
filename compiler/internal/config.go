package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxTapeSize bounds pre + post so the cell array stays a sane C object.
const MaxTapeSize = 1 << 30

// Config is the content of bfc.yaml. Command line flags override it.
type Config struct {
	Backend  string     `yaml:"backend"`
	Tape     TapeConfig `yaml:"tape"`
	MaxDepth int        `yaml:"max_depth"`
	Check    bool       `yaml:"check"`
	Log      LogConfig  `yaml:"log"`
}

type TapeConfig struct {
	Pre  uint32 `yaml:"pre"`
	Post uint32 `yaml:"post"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:  C99Backend{}.Name(),
		Tape:     TapeConfig{Pre: 0, Post: 30000},
		MaxDepth: DefaultMaxDepth,
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// ConfigError collects every validation failure of a config.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config: validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadConfig reads path on top of the defaults and validates the result. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	config, err := DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return config, nil
}

// DecodeConfig is LoadConfig for an already opened source. An empty document yields the defaults.
func DecodeConfig(rd io.Reader) (*Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(rd)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) Validate() error {
	var errs ConfigError
	if _, err := LookupBackend(config.Backend); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("backend %q is not one of: %s", config.Backend,
			strings.Join(BackendNames(), ", ")))
	}
	if config.Tape.Post < 1 {
		errs.Issues = append(errs.Issues, "tape.post must be at least 1, the initial cell lies after the pointer")
	}
	if uint64(config.Tape.Pre)+uint64(config.Tape.Post) > MaxTapeSize {
		errs.Issues = append(errs.Issues, fmt.Sprintf("tape.pre + tape.post must not exceed %d", MaxTapeSize))
	}
	if config.MaxDepth < 1 {
		errs.Issues = append(errs.Issues, "max_depth must be at least 1")
	}
	if _, err := ParseLevel(config.Log.Level); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.level %q is not one of: trace, debug, info, warn, error",
			config.Log.Level))
	}
	switch strings.ToLower(config.Log.Format) {
	case "", "text", "json":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.format %q is not one of: text, json", config.Log.Format))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (config *Config) Options() Options {
	return Options{Pre: config.Tape.Pre, Post: config.Tape.Post, MaxDepth: config.MaxDepth}
}
