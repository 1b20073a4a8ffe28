package request

import (
	"reflect"
	"strings"
	"sync"

	"field_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations adds the domain enum tags (pricing_unit,
// material_tier, complexity_level, job_status, role) to gin's validator.
// It is safe to call more than once.
func RegisterValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = registerOn(v)
	})
	return err
}

func registerOn(v *validator.Validate) error {
	// Report json names so errors point at the field the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	tags := map[string]func(string) error{
		"pricing_unit":     func(s string) error { _, err := entities.ParsePricingUnit(s); return err },
		"material_tier":    func(s string) error { _, err := entities.ParseMaterialTier(s); return err },
		"complexity_level": func(s string) error { _, err := entities.ParseComplexityLevel(s); return err },
		"job_status":       func(s string) error { _, err := entities.ParseJobStatus(s); return err },
		"role":             func(s string) error { _, err := entities.ParseRole(s); return err },
	}
	for tag, parse := range tags {
		parse := parse
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return parse(fl.Field().String()) == nil
		}); err != nil {
			return err
		}
	}
	return nil
}
