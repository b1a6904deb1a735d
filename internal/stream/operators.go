// Package stream provides constructors for the builtin pipeline operators.
// Construction only: driving values through a pipeline is the job of an
// execution engine, not of this repository.
package stream

import (
	"github.com/streamfuse/streamfuse/internal/catalog"
	"github.com/streamfuse/streamfuse/internal/model"
)

// Map yields one output per input by applying fn.
func Map(fn func(any) any) model.Node {
	return model.NewNode(catalog.OpMap, func(v any, emit func(any)) {
		emit(fn(v))
	})
}

// Filter passes through only the elements pred accepts.
func Filter(pred func(any) bool) model.Node {
	return model.NewNode(catalog.OpFilter, func(v any, emit func(any)) {
		if pred(v) {
			emit(v)
		}
	})
}

// Scan folds elements into an accumulator seeded with seed, emitting the
// running value. The accumulator lives in the transform closure.
func Scan(fn func(acc, v any) any, seed any) model.Node {
	acc := seed
	return model.NewNode(catalog.OpScan, func(v any, emit func(any)) {
		acc = fn(acc, v)
		emit(acc)
	}, seed)
}

// FlatMap emits every element fn produces for an input.
func FlatMap(fn func(any) []any) model.Node {
	return model.NewNode(catalog.OpFlatMap, func(v any, emit func(any)) {
		for _, out := range fn(v) {
			emit(out)
		}
	})
}

// Take passes through the first n elements and drops the rest.
func Take(n int) model.Node {
	remaining := n
	return model.NewNode(catalog.OpTake, func(v any, emit func(any)) {
		if remaining > 0 {
			remaining--
			emit(v)
		}
	}, n)
}

// Skip drops the first n elements.
func Skip(n int) model.Node {
	remaining := n
	return model.NewNode(catalog.OpSkip, func(v any, emit func(any)) {
		if remaining > 0 {
			remaining--
			return
		}
		emit(v)
	}, n)
}

// Distinct drops elements already seen. Elements must be comparable.
func Distinct() model.Node {
	seen := make(map[any]struct{})
	return model.NewNode(catalog.OpDistinct, func(v any, emit func(any)) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		emit(v)
	})
}
