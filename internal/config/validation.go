package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	streamfuseerrors "github.com/streamfuse/streamfuse/pkg/errors"
)

// Builtin function names accepted per operator kind.
var operatorFns = map[string]map[string]struct{}{
	"map":     {"add": {}, "mul": {}, "negate": {}, "abs": {}},
	"filter":  {"gt": {}, "lt": {}, "nonzero": {}},
	"scan":    {"sum": {}, "product": {}, "max": {}},
	"flatMap": {"repeat": {}},
}

// ValidateConfig performs structural and cross-field validation on a pipeline document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return streamfuseerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i, spec := range cfg.Pipeline {
		if err := validateOperatorSpec(spec, i); err != nil {
			return err
		}
	}

	return nil
}

func validateOperatorSpec(spec OperatorSpec, index int) error {
	fns, needsFn := operatorFns[spec.Op]

	if needsFn {
		if spec.Fn == "" {
			return streamfuseerrors.NewValidationError(fieldForOperator(index, "fn"), fmt.Sprintf("operator %q requires a function", spec.Op), nil)
		}
		if _, ok := fns[spec.Fn]; !ok {
			return streamfuseerrors.NewValidationError(fieldForOperator(index, "fn"), fmt.Sprintf("unknown function %q for operator %q (expected one of %s)", spec.Fn, spec.Op, fnNames(fns)), nil)
		}
	} else if spec.Fn != "" {
		return streamfuseerrors.NewValidationError(fieldForOperator(index, "fn"), fmt.Sprintf("operator %q does not take a function", spec.Op), nil)
	}

	if spec.Op == "take" || spec.Op == "skip" {
		if spec.Count <= 0 {
			return streamfuseerrors.NewValidationError(fieldForOperator(index, "count"), fmt.Sprintf("operator %q requires a positive count", spec.Op), nil)
		}
	}

	return nil
}

func fieldForOperator(index int, field string) string {
	return fmt.Sprintf("pipeline[%d].%s", index, field)
}

func fnNames(fns map[string]struct{}) string {
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func convertValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return streamfuseerrors.NewValidationError(first.Namespace(), fmt.Sprintf("failed %q validation", first.Tag()), err)
	}
	return streamfuseerrors.NewValidationError("", err.Error(), err)
}
