package engine

import (
	"github.com/streamfuse/streamfuse/internal/catalog"
	"github.com/streamfuse/streamfuse/internal/rules"
)

// Environment bundles the operator catalog and fusion rule registry an
// optimizer run reads from. Construct it once at startup, register any custom
// operators and rules, then share it across runs; the optimizer never
// mutates it.
type Environment struct {
	Catalog *catalog.Catalog
	Rules   *rules.Registry
}

// NewEnvironment wraps an existing catalog and registry.
func NewEnvironment(cat *catalog.Catalog, reg *rules.Registry) *Environment {
	return &Environment{Catalog: cat, Rules: reg}
}

// NewDefaultEnvironment returns an environment with the builtin operators
// and pair rules registered.
func NewDefaultEnvironment() *Environment {
	cat := catalog.NewDefault()
	return &Environment{Catalog: cat, Rules: rules.NewDefault(cat)}
}
