package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)

	operatorKinds = map[string]struct{}{
		"map": {}, "filter": {}, "scan": {}, "flatMap": {},
		"take": {}, "skip": {}, "distinct": {},
	}
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("operator_kind", func(fl validator.FieldLevel) bool {
			_, ok := operatorKinds[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
