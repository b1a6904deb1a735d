package config

// Config represents a full streamfuse pipeline document.
type Config struct {
	Version     string           `yaml:"version" validate:"required,semver"`
	Name        string           `yaml:"name" validate:"required,min=1,max=100"`
	Description string           `yaml:"description,omitempty"`
	Optimizer   OptimizerOptions `yaml:"optimizer,omitempty"`
	Pipeline    []OperatorSpec   `yaml:"pipeline" validate:"required,min=1,dive"`
}

// OperatorSpec describes one pipeline operator and the builtin function it
// should be instantiated with. Which auxiliary fields are meaningful depends
// on the operator kind; cross-field rules live in ValidateConfig.
type OperatorSpec struct {
	Op string `yaml:"op" validate:"required,operator_kind"`
	// Fn names a builtin function for map, filter, scan and flatMap.
	Fn string `yaml:"fn,omitempty"`
	// Value parameterizes map and filter functions (e.g. mul 2, gt 10).
	Value float64 `yaml:"value,omitempty"`
	// Seed is the initial accumulator for scan.
	Seed float64 `yaml:"seed,omitempty"`
	// Count parameterizes take and skip.
	Count int `yaml:"count,omitempty" validate:"omitempty,min=0"`
	// Times parameterizes flatMap's repeat.
	Times int `yaml:"times,omitempty" validate:"omitempty,min=1"`
}
