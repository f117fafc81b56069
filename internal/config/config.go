// Package config holds the mstbench configuration, loaded through viper from
// defaults, an optional mstbench.yaml, MSTBENCH_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/katalvlaran/mstbench/builder"
)

var (
	instance *Config
	mu       sync.RWMutex
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Input     InputConfig     `mapstructure:"input" yaml:"input"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Processor ProcessorConfig `mapstructure:"processor" yaml:"processor"`
	Generate  GenerateConfig  `mapstructure:"generate" yaml:"generate"`
}

// ColorConfig names the ANSI color used for each level in console logs.
// Levels above error use the Error color.
type ColorConfig struct {
	Debug string `mapstructure:"debug" json:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" json:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" json:"warn" yaml:"warn"`
	Error string `mapstructure:"error" json:"error" yaml:"error"`
}

// LoggerConfig configures the process-wide logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" json:"level" yaml:"level"`
	Format      string      `mapstructure:"format" json:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" json:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" json:"colors" yaml:"colors"`
}

// InputConfig locates the batch document.
type InputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// OutputConfig controls where results go.
type OutputConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Report bool   `mapstructure:"report" yaml:"report"`
}

// ProcessorConfig tunes the batch processor.
type ProcessorConfig struct {
	Workers    int    `mapstructure:"workers" yaml:"workers"`
	PrimPolicy string `mapstructure:"prim_policy" yaml:"prim_policy"`
}

// WeightConfig selects the edge weight distribution for generated graphs.
// Only the fields of the chosen distribution are read.
type WeightConfig struct {
	Distribution string  `mapstructure:"distribution" yaml:"distribution"`
	Value        float64 `mapstructure:"value" yaml:"value"`
	Min          float64 `mapstructure:"min" yaml:"min"`
	Max          float64 `mapstructure:"max" yaml:"max"`
	Mean         float64 `mapstructure:"mean" yaml:"mean"`
	Stddev       float64 `mapstructure:"stddev" yaml:"stddev"`
	Rate         float64 `mapstructure:"rate" yaml:"rate"`
}

// GenerateConfig drives the generate command.
type GenerateConfig struct {
	Output   string          `mapstructure:"output" yaml:"output"`
	Seed     int64           `mapstructure:"seed" yaml:"seed"`
	IDScheme string          `mapstructure:"id_scheme" yaml:"id_scheme"`
	Weights  WeightConfig    `mapstructure:"weights" yaml:"weights"`
	Shapes   []builder.Shape `mapstructure:"shapes" yaml:"shapes"`
}

// Weight distributions.
const (
	DistConstant    = "constant"
	DistUniform     = "uniform"
	DistInteger     = "integer"
	DistNormal      = "normal"
	DistExponential = "exponential"
)

// Vertex ID schemes.
const (
	IDSchemeNumeric = "numeric"
	IDSchemeExcel   = "excel"
	IDSchemeSymbol  = "symbol"
)

// Prim policies, mirrored from batch.PrimPolicy.
const (
	PrimPolicyForest     = "forest"
	PrimPolicySingleTree = "single-tree"
)

// SetDefaults registers the default of every key so a run needs no config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "mstbench")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	v.SetDefault("input.path", "input.json")
	v.SetDefault("output.path", "output.json")
	v.SetDefault("output.report", true)

	v.SetDefault("processor.workers", 1)
	v.SetDefault("processor.prim_policy", PrimPolicyForest)

	v.SetDefault("generate.output", "input.json")
	v.SetDefault("generate.seed", 1)
	v.SetDefault("generate.id_scheme", IDSchemeExcel)
	v.SetDefault("generate.weights.distribution", DistInteger)
	v.SetDefault("generate.weights.min", 1)
	v.SetDefault("generate.weights.max", 20)
	v.SetDefault("generate.shapes", []map[string]interface{}{
		{"topology": builder.TopologyCycle, "vertices": 5},
		{"topology": builder.TopologyRandomConnected, "vertices": 12, "extra": 10},
		{"topology": builder.TopologyComplete, "vertices": 8},
		{"topology": builder.TopologyGrid, "rows": 4, "cols": 5},
		{"topology": builder.TopologyRandomSparse, "vertices": 15, "probability": 0.15},
	})
}

// Load unmarshals v into a Config. It does not validate or store it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Get returns the configuration stored by Set. It panics if none was stored.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("Configuration not initialized. Call config.Set() in the root command.")
	}

	return instance
}

// Set replaces the configuration singleton.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}

// Validate checks every section and joins all problems found.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...))
	}

	switch c.Logger.Format {
	case "console", "json":
	default:
		add("logger.format must be console or json, got %q", c.Logger.Format)
	}
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		add("logger.level %q is not a zap level", c.Logger.Level)
	}

	if c.Processor.Workers < 1 {
		add("processor.workers must be at least 1, got %d", c.Processor.Workers)
	}
	switch c.Processor.PrimPolicy {
	case PrimPolicyForest, PrimPolicySingleTree:
	default:
		add("processor.prim_policy must be %s or %s, got %q",
			PrimPolicyForest, PrimPolicySingleTree, c.Processor.PrimPolicy)
	}

	switch c.Generate.IDScheme {
	case IDSchemeNumeric, IDSchemeExcel, IDSchemeSymbol:
	default:
		add("generate.id_scheme %q is unknown", c.Generate.IDScheme)
	}
	if err := c.Generate.Weights.validate(); err != nil {
		add("%v", err)
	}
	for i, s := range c.Generate.Shapes {
		if _, err := s.Constructor(); err != nil {
			add("generate.shapes[%d]: %v", i, err)
		}
	}

	return errors.Join(errs...)
}

func (w WeightConfig) validate() error {
	switch w.Distribution {
	case DistConstant:
		if w.Value < 0 {
			return fmt.Errorf("generate.weights.value must be >= 0, got %g", w.Value)
		}
	case DistUniform, DistInteger:
		if w.Min < 0 || w.Max < w.Min {
			return fmt.Errorf("generate.weights needs 0 <= min <= max, got min=%g max=%g", w.Min, w.Max)
		}
		if w.Distribution == DistInteger && (w.Min != math.Trunc(w.Min) || w.Max != math.Trunc(w.Max)) {
			return fmt.Errorf("generate.weights min and max must be whole numbers for %s, got min=%g max=%g",
				DistInteger, w.Min, w.Max)
		}
	case DistNormal:
		if w.Stddev < 0 {
			return fmt.Errorf("generate.weights.stddev must be >= 0, got %g", w.Stddev)
		}
	case DistExponential:
		if w.Rate <= 0 {
			return fmt.Errorf("generate.weights.rate must be > 0, got %g", w.Rate)
		}
	default:
		return fmt.Errorf("generate.weights.distribution %q is unknown", w.Distribution)
	}

	return nil
}

// BuilderOptions translates the generate section into builder options.
// Call Validate first: the weight constructors panic on out-of-range values.
func (g GenerateConfig) BuilderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(g.Seed)}

	switch g.IDScheme {
	case IDSchemeExcel:
		opts = append(opts, builder.WithExcelColumnIDs())
	case IDSchemeSymbol:
		opts = append(opts, builder.WithSymbNumb("v"))
	}

	w := g.Weights
	switch w.Distribution {
	case DistConstant:
		opts = append(opts, builder.WithConstantWeight(w.Value))
	case DistUniform:
		opts = append(opts, builder.WithUniformWeight(w.Min, w.Max))
	case DistInteger:
		opts = append(opts, builder.WithIntegerWeight(int(w.Min), int(w.Max)))
	case DistNormal:
		opts = append(opts, builder.WithNormalWeight(w.Mean, w.Stddev))
	case DistExponential:
		opts = append(opts, builder.WithExponentialWeight(w.Rate))
	}

	return opts
}
