/*
Copyright © 2015-2026 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package config loads session settings from a file and the environment.
//
// A file such as
//
//	log:
//	  level: debug
//	solver:
//	  time_limit: 30s
//	  threads: 4
//	  options:
//	    solver: ipm
//
// is read with Load. Every key can be overridden from the environment with a
// HIGHS_ prefix, e.g. HIGHS_SOLVER_THREADS=8.
package config

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/costela/highs"
)

const envPrefix = "HIGHS"

type Config struct {
	Log    LogConfig    `mapstructure:"log"    yaml:"log"`
	Solver SolverConfig `mapstructure:"solver" yaml:"solver"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json console"`
}

// SolverConfig holds the parameters every new session starts with. Zero
// TimeLimit and Threads leave the solver defaults alone.
type SolverConfig struct {
	Output    bool          `mapstructure:"output"      yaml:"output"`
	TimeLimit time.Duration `mapstructure:"time_limit"  yaml:"time_limit"  validate:"gte=0"`
	MIPRelGap float64       `mapstructure:"mip_rel_gap" yaml:"mip_rel_gap" validate:"gte=0"`
	Threads   int           `mapstructure:"threads"     yaml:"threads"     validate:"gte=0"`
	Presolve  string        `mapstructure:"presolve"    yaml:"presolve"    validate:"oneof=off choose on"`

	// Options are passed to the solver by name. Their type picks the setter,
	// so JSON files can only express float and string options.
	Options map[string]any `mapstructure:"options" yaml:"options,omitempty"`
}

// Default returns the configuration used for keys missing from file and
// environment.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Solver: SolverConfig{
			MIPRelGap: 1e-4,
			Presolve:  "choose",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("solver.output", d.Solver.Output)
	v.SetDefault("solver.time_limit", d.Solver.TimeLimit)
	v.SetDefault("solver.mip_rel_gap", d.Solver.MIPRelGap)
	v.SetDefault("solver.threads", d.Solver.Threads)
	v.SetDefault("solver.presolve", d.Solver.Presolve)
}

// Load reads the configuration at path, whose extension selects the format
// (yaml, toml or json). An empty path uses defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SessionOptions turns the solver section into options for highs.New.
// Named options come last, in key order, so they win over the typed fields.
func (c *Config) SessionOptions() []highs.Option {
	sc := c.Solver

	opts := []highs.Option{
		highs.WithOutput(sc.Output),
		highs.WithMIPRelGap(sc.MIPRelGap),
		highs.WithPresolve(sc.Presolve),
	}
	if sc.TimeLimit > 0 {
		opts = append(opts, highs.WithTimeLimit(sc.TimeLimit))
	}
	if sc.Threads > 0 {
		opts = append(opts, highs.WithThreads(sc.Threads))
	}

	for _, name := range slices.Sorted(maps.Keys(sc.Options)) {
		opts = append(opts, highs.WithParameter(name, sc.Options[name]))
	}

	return opts
}

// Logger builds the logger described by the log section, writing to w.
func (c *Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	if c.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Marshal returns the effective configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
