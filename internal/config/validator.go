package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
	"github.com/alexisbeaulieu97/chartkit/internal/format"
	chartkiterrors "github.com/alexisbeaulieu97/chartkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml names so errors point at document keys.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			return chart.IsVariantName(fl.Field().String())
		})

		_ = v.RegisterValidation("format_style", func(fl validator.FieldLevel) bool {
			return format.IsStyle(strings.ToLower(fl.Field().String()))
		})

		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on every chart.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return chartkiterrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i := range doc.Charts {
		if err := validateChart(doc.Charts[i], i); err != nil {
			return err
		}
	}

	return nil
}

func validateChart(c Chart, index int) error {
	switch c.Kind {
	case KindBar:
		if len(c.Slices) > 0 {
			return chartkiterrors.NewValidationError(fieldForChart(index, "slices"), "bar charts take points, not slices", nil)
		}
		if c.CenterLabel != nil {
			return chartkiterrors.NewValidationError(fieldForChart(index, "center_label"), "only pie charts have a center label", nil)
		}
	case KindPie:
		if len(c.Points) > 0 {
			return chartkiterrors.NewValidationError(fieldForChart(index, "points"), "pie charts take slices, not points", nil)
		}
		if len(c.Groups) > 0 {
			return chartkiterrors.NewValidationError(fieldForChart(index, "groups"), "only bar charts have groups", nil)
		}
	}

	for j, p := range c.Points {
		switch {
		case p.Kind == PointKindSimple && p.hasGroups:
			return chartkiterrors.NewValidationError(fieldForPoint(index, j, "groups"), "simple points cannot carry groups", nil)
		case p.Kind == PointKindGrouped && p.hasValue:
			return chartkiterrors.NewValidationError(fieldForPoint(index, j, "value"), "grouped points carry values inside groups", nil)
		}
	}

	if c.Format != nil {
		if _, err := c.Format.Spec().Formatter(); err != nil {
			return chartkiterrors.NewValidationError(fieldForChart(index, "format"), err.Error(), err)
		}
	}

	if c.Strict {
		if err := chart.ValidatePoints(c.ChartPoints()); err != nil {
			return chartkiterrors.NewValidationError(fieldForChart(index, "points"), "strict charts cannot mix simple and grouped points", err)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return chartkiterrors.NewValidationError(field, validationMessage(ve), err)
	}

	return chartkiterrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace: charts[0].groups[1].variant.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "unique":
		return fmt.Sprintf("%s values must be unique", strings.ToLower(fe.Param()))
	case "variant":
		return fmt.Sprintf("must be one of %s", strings.Join(variantNames(), " "))
	case "format_style":
		names := make([]string, len(format.Styles))
		for i, s := range format.Styles {
			names[i] = string(s)
		}
		return fmt.Sprintf("must be one of %s", strings.Join(names, " "))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "finite":
		return "must be a finite number"
	case "bcp47_language_tag":
		return "must be a BCP 47 language tag"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func variantNames() []string {
	names := make([]string, len(chart.VariantCycle))
	for i, v := range chart.VariantCycle {
		names[i] = v.String()
	}
	return names
}

func fieldForChart(index int, field string) string {
	return fmt.Sprintf("charts[%d].%s", index, field)
}

func fieldForPoint(chartIndex, pointIndex int, field string) string {
	return fmt.Sprintf("charts[%d].points[%d].%s", chartIndex, pointIndex, field)
}
