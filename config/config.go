package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/planner"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "VALVEFLOW_"

var (
	// ErrInvalidConfig is returned when the merged settings fail validation.
	ErrInvalidConfig = errors.New("config: invalid settings")

	// ErrBadEnv is returned when an environment override cannot be parsed.
	ErrBadEnv = errors.New("config: bad environment value")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config holds every setting of a solve run.
type Config struct {
	// Input is the network file; empty means standard input.
	Input        string `yaml:"input"`
	Start        string `yaml:"start" validate:"required"`
	SingleBudget int    `yaml:"single_budget" validate:"gte=0"`
	PairBudget   int    `yaml:"pair_budget" validate:"gte=0"`
	// Workers bounds solver goroutines; 0 means GOMAXPROCS.
	Workers   int    `yaml:"workers" validate:"gte=0"`
	Tunnels   string `yaml:"tunnels" validate:"oneof=directed strict mirror"`
	Routes    bool   `yaml:"routes"`
	LogLevel  string `yaml:"log_level" validate:"oneof=trace debug info warn warning error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Start:        planner.DefaultStart,
		SingleBudget: planner.DefaultSingleBudget,
		PairBudget:   planner.DefaultPairBudget,
		Tunnels:      core.Directed.String(),
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load merges defaults, the YAML file at path and the environment, then
// validates the result. Empty path or envFile skip that source.
//
// A zero budget in the file is indistinguishable from an absent one and
// takes the default; set a zero budget through the environment or a flag.
func Load(path, envFile string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("Load: %s: %w", path, err)
		}
	}
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return nil, fmt.Errorf("Load: defaults: %w", err)
	}

	env, err := environment(envFile)
	if err != nil {
		return nil, err
	}
	if err = cfg.applyEnv(env); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// environment collects VALVEFLOW_* variables; the process environment wins
// over envFile.
func environment(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("Load: %s: %w", envFile, err)
		}
		for k, v := range fromFile {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}

	return env, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	strs := map[string]*string{
		"INPUT":      &c.Input,
		"START":      &c.Start,
		"TUNNELS":    &c.Tunnels,
		"LOG_LEVEL":  &c.LogLevel,
		"LOG_FORMAT": &c.LogFormat,
	}
	ints := map[string]*int{
		"SINGLE_BUDGET": &c.SingleBudget,
		"PAIR_BUDGET":   &c.PairBudget,
		"WORKERS":       &c.Workers,
	}
	for key, dst := range strs {
		if v, ok := env[EnvPrefix+key]; ok {
			*dst = v
		}
	}
	for key, dst := range ints {
		v, ok := env[EnvPrefix+key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, ErrBadEnv)
		}
		*dst = n
	}
	if v, ok := env[EnvPrefix+"ROUTES"]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sROUTES=%q: %w", EnvPrefix, v, ErrBadEnv)
		}
		c.Routes = b
	}

	return nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Symmetry resolves the tunnel policy.
func (c *Config) Symmetry() (core.Symmetry, error) {
	return core.ParseSymmetry(c.Tunnels)
}

// Request converts the settings into a solver request.
func (c *Config) Request() planner.Request {
	return planner.Request{
		Start:        c.Start,
		SingleBudget: c.SingleBudget,
		PairBudget:   c.PairBudget,
	}
}

// SolverOptions returns the planner options implied by the settings.
func (c *Config) SolverOptions() []planner.Option {
	if c.Workers > 0 {
		return []planner.Option{planner.WithWorkers(c.Workers)}
	}

	return nil
}
