package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	streamfuseerrors "github.com/streamfuse/streamfuse/pkg/errors"

	"github.com/streamfuse/streamfuse/internal/model"
)

// Category describes whether an operator carries state across elements.
type Category string

const (
	// Stateless operators depend only on the current element.
	Stateless Category = "stateless"
	// Stateful operators carry accumulated state or cross-element effects.
	Stateful Category = "stateful"
)

// Multiplicity describes how many outputs a single input element may yield.
type Multiplicity string

const (
	// Preserve yields exactly one output per input.
	Preserve Multiplicity = "preserve"
	// Increase may yield more than one output per input.
	Increase Multiplicity = "increase"
	// Decrease may drop inputs entirely.
	Decrease Multiplicity = "decrease"
)

// Descriptor is the static metadata for one operator kind. Descriptors are
// immutable once registered.
type Descriptor struct {
	Name         string
	Category     Category
	Multiplicity Multiplicity
	// FusibleBefore lists operator names that may legally appear immediately
	// before this kind in a fusion; FusibleAfter lists the names that may
	// appear immediately after it. Fusibility is directional: fusing A before
	// B consults A's FusibleAfter only.
	FusibleBefore []string
	FusibleAfter  []string
}

// CanPrecede reports whether this kind may be fused immediately before name.
func (d Descriptor) CanPrecede(name string) bool {
	for _, candidate := range d.FusibleAfter {
		if candidate == name {
			return true
		}
	}
	return false
}

// Catalog holds the registered operator descriptors. Registration is expected
// to happen once at startup; afterwards the catalog is read-mostly and safe
// for concurrent lookups.
type Catalog struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{descriptors: make(map[string]Descriptor)}
}

// Register adds or overwrites the descriptor for an operator kind. There is
// no deletion; a kind absent from the catalog is simply never fusible.
func (c *Catalog) Register(desc Descriptor) error {
	if strings.TrimSpace(desc.Name) == "" {
		return streamfuseerrors.NewValidationError("name", "operator name cannot be empty", nil)
	}
	if strings.Contains(desc.Name, model.FusedOpSeparator) {
		return streamfuseerrors.NewValidationError("name", fmt.Sprintf("operator name %q contains reserved separator %q", desc.Name, model.FusedOpSeparator), nil)
	}
	if desc.Category != Stateless && desc.Category != Stateful {
		return streamfuseerrors.NewValidationError("category", fmt.Sprintf("unknown category %q for operator %q", desc.Category, desc.Name), nil)
	}
	if desc.Multiplicity != Preserve && desc.Multiplicity != Increase && desc.Multiplicity != Decrease {
		return streamfuseerrors.NewValidationError("multiplicity", fmt.Sprintf("unknown multiplicity %q for operator %q", desc.Multiplicity, desc.Name), nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	desc.FusibleBefore = append([]string(nil), desc.FusibleBefore...)
	desc.FusibleAfter = append([]string(nil), desc.FusibleAfter...)
	c.descriptors[desc.Name] = desc
	return nil
}

// Lookup returns the descriptor for an operator kind, if registered.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	desc, ok := c.descriptors[name]
	return desc, ok
}

// Names returns the registered operator names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.descriptors))
	for name := range c.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
