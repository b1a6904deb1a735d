package stream

import (
	"fmt"
	"math"

	streamfuseerrors "github.com/streamfuse/streamfuse/pkg/errors"

	"github.com/streamfuse/streamfuse/internal/config"
	"github.com/streamfuse/streamfuse/internal/model"
)

// FromSpec instantiates a pipeline node from a validated document entry.
func FromSpec(spec config.OperatorSpec) (model.Node, error) {
	switch spec.Op {
	case "map":
		fn, err := mapFn(spec)
		if err != nil {
			return model.Node{}, err
		}
		return Map(fn), nil
	case "filter":
		pred, err := filterFn(spec)
		if err != nil {
			return model.Node{}, err
		}
		return Filter(pred), nil
	case "scan":
		fn, err := scanFn(spec)
		if err != nil {
			return model.Node{}, err
		}
		return Scan(fn, spec.Seed), nil
	case "flatMap":
		fn, err := flatMapFn(spec)
		if err != nil {
			return model.Node{}, err
		}
		return FlatMap(fn), nil
	case "take":
		return Take(spec.Count), nil
	case "skip":
		return Skip(spec.Count), nil
	case "distinct":
		return Distinct(), nil
	default:
		return model.Node{}, streamfuseerrors.NewValidationError("op", fmt.Sprintf("unknown operator %q", spec.Op), nil)
	}
}

// FromSpecs instantiates an entire pipeline document.
func FromSpecs(specs []config.OperatorSpec) ([]model.Node, error) {
	pipeline := make([]model.Node, 0, len(specs))
	for i, spec := range specs {
		node, err := FromSpec(spec)
		if err != nil {
			return nil, streamfuseerrors.NewValidationError(fmt.Sprintf("pipeline[%d]", i), err.Error(), err)
		}
		pipeline = append(pipeline, node)
	}
	return pipeline, nil
}

func mapFn(spec config.OperatorSpec) (func(any) any, error) {
	value := spec.Value
	switch spec.Fn {
	case "add":
		return func(v any) any { return asFloat(v) + value }, nil
	case "mul":
		return func(v any) any { return asFloat(v) * value }, nil
	case "negate":
		return func(v any) any { return -asFloat(v) }, nil
	case "abs":
		return func(v any) any { return math.Abs(asFloat(v)) }, nil
	default:
		return nil, streamfuseerrors.NewValidationError("fn", fmt.Sprintf("unknown map function %q", spec.Fn), nil)
	}
}

func filterFn(spec config.OperatorSpec) (func(any) bool, error) {
	value := spec.Value
	switch spec.Fn {
	case "gt":
		return func(v any) bool { return asFloat(v) > value }, nil
	case "lt":
		return func(v any) bool { return asFloat(v) < value }, nil
	case "nonzero":
		return func(v any) bool { return asFloat(v) != 0 }, nil
	default:
		return nil, streamfuseerrors.NewValidationError("fn", fmt.Sprintf("unknown filter function %q", spec.Fn), nil)
	}
}

func scanFn(spec config.OperatorSpec) (func(acc, v any) any, error) {
	switch spec.Fn {
	case "sum":
		return func(acc, v any) any { return asFloat(acc) + asFloat(v) }, nil
	case "product":
		return func(acc, v any) any { return asFloat(acc) * asFloat(v) }, nil
	case "max":
		return func(acc, v any) any { return math.Max(asFloat(acc), asFloat(v)) }, nil
	default:
		return nil, streamfuseerrors.NewValidationError("fn", fmt.Sprintf("unknown scan function %q", spec.Fn), nil)
	}
}

func flatMapFn(spec config.OperatorSpec) (func(any) []any, error) {
	switch spec.Fn {
	case "repeat":
		times := spec.Times
		return func(v any) []any {
			out := make([]any, times)
			for i := range out {
				out[i] = v
			}
			return out
		}, nil
	default:
		return nil, streamfuseerrors.NewValidationError("fn", fmt.Sprintf("unknown flatMap function %q", spec.Fn), nil)
	}
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
