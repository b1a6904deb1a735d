package config

// LogLevel selects how much detail trace formatting includes.
type LogLevel string

const (
	// LogLevelBasic prints one line per fusion naming the operators and result.
	LogLevelBasic LogLevel = "basic"
	// LogLevelDetailed adds the fusion type and timestamp.
	LogLevelDetailed LogLevel = "detailed"
	// LogLevelVerbose adds the position and before/after pipeline lengths.
	LogLevelVerbose LogLevel = "verbose"
)

// Valid reports whether the level is one of the known values.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelBasic, LogLevelDetailed, LogLevelVerbose:
		return true
	}
	return false
}

// OptimizerConfig controls a single optimization run. It is immutable for
// the duration of the run.
type OptimizerConfig struct {
	EnableTracing bool
	// MaxIterations bounds the number of rewrite passes. Zero is honored and
	// means "run no passes"; it is a budget, not an error condition.
	MaxIterations  int
	LogLevel       LogLevel
	TraceToConsole bool
}

// DefaultOptimizerConfig returns the documented defaults: tracing off, ten
// iterations, basic log level, no console output.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		EnableTracing:  false,
		MaxIterations:  10,
		LogLevel:       LogLevelBasic,
		TraceToConsole: false,
	}
}

// Normalize fills malformed fields from defaults. A negative iteration
// budget clamps to zero; an unknown log level falls back to basic.
func (c OptimizerConfig) Normalize() OptimizerConfig {
	if c.MaxIterations < 0 {
		c.MaxIterations = 0
	}
	if !c.LogLevel.Valid() {
		c.LogLevel = LogLevelBasic
	}
	return c
}

// OptimizerOptions is the optional optimizer section of a pipeline document.
// Pointer fields distinguish "absent" from an explicit zero value so that
// max_iterations: 0 is honored while a missing field takes the default.
type OptimizerOptions struct {
	EnableTracing  *bool  `yaml:"enable_tracing,omitempty"`
	MaxIterations  *int   `yaml:"max_iterations,omitempty" validate:"omitempty,min=0,max=10000"`
	LogLevel       string `yaml:"log_level,omitempty" validate:"omitempty,oneof=basic detailed verbose"`
	TraceToConsole *bool  `yaml:"trace_to_console,omitempty"`
}

// Apply overlays the document options onto a base configuration.
func (o OptimizerOptions) Apply(base OptimizerConfig) OptimizerConfig {
	if o.EnableTracing != nil {
		base.EnableTracing = *o.EnableTracing
	}
	if o.MaxIterations != nil {
		base.MaxIterations = *o.MaxIterations
	}
	if o.LogLevel != "" {
		base.LogLevel = LogLevel(o.LogLevel)
	}
	if o.TraceToConsole != nil {
		base.TraceToConsole = *o.TraceToConsole
	}
	return base.Normalize()
}
