package prim

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks technologies when they are frozen. Struct tags cover the
// simple field constraints; the struct-level functions below cover the ones
// that relate several fields.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateTemplate, ShapeTemplate{})
	validate.RegisterStructValidation(validateNode, PrimitiveNode{})
	validate.RegisterStructValidation(validatePort, PrimitivePort{})
}

func validateTemplate(sl validator.StructLevel) {
	t := sl.Current().Interface().(ShapeTemplate)
	n := len(t.Points)
	switch {
	case t.Rep == BoxRep && n != 2:
		sl.ReportError(t.Points, "Points", "Points", "box", "2")
	case t.Style == Vectors && n%2 != 0:
		sl.ReportError(t.Points, "Points", "Points", "vectors", "even")
	case t.Style.IsArc() && n < 3:
		sl.ReportError(t.Points, "Points", "Points", "arc", "3")
	case t.Style.IsCircular() && n < 2:
		sl.ReportError(t.Points, "Points", "Points", "circle", "2")
	}
	if t.Style.IsText() && t.Message == "" {
		sl.ReportError(t.Message, "Message", "Message", "text", "")
	}
}

func validateNode(sl validator.StructLevel) {
	np := sl.Current().Interface().(PrimitiveNode)
	switch np.Strategy {
	case StrategyVariant:
		if np.Family == nil {
			sl.ReportError(np.Family, "Family", "Family", "family", "")
		} else if err := np.Family.Validate(); err != nil {
			sl.ReportError(np.Family, "Family", "Family", "family", err.Error())
		}
	case StrategyGate:
		if np.Grow == nil {
			sl.ReportError(np.Grow, "Grow", "Grow", "grow", "")
		}
	case StrategyPartialCircle:
		if !np.Flags.Has(PartialCircle) {
			sl.ReportError(np.Flags, "Flags", "Flags", "partialcircle", "")
		}
	case StrategyOutline, StrategySpline:
		if !np.Flags.Has(HoldsOutline) {
			sl.ReportError(np.Flags, "Flags", "Flags", "holdsoutline", "")
		}
	}
	for _, t := range np.Templates {
		if t.PortIndex >= len(np.Ports) {
			sl.ReportError(t.PortIndex, "PortIndex", "PortIndex", "port", fmt.Sprint(len(np.Ports)))
		}
	}
	seen := make(map[string]bool, len(np.Ports))
	for _, pp := range np.Ports {
		if pp == nil {
			continue
		}
		if seen[pp.Name] {
			sl.ReportError(np.Ports, "Ports", "Ports", "unique", pp.Name)
		}
		seen[pp.Name] = true
		if pp.Mode == PortSelection && np.Selection == SelectNone {
			sl.ReportError(np.Selection, "Selection", "Selection", "selection", pp.Name)
		}
		if pp.Mode == PortProportional && np.Size.IsZero() {
			sl.ReportError(np.Size, "Size", "Size", "proportional", pp.Name)
		}
	}
}

func validatePort(sl validator.StructLevel) {
	pp := sl.Current().Interface().(PrimitivePort)
	if pp.Mode == PortSelection && pp.Nominal.IsEmpty() {
		sl.ReportError(pp.Nominal, "Nominal", "Nominal", "nominal", "")
	}
}

// formatValidationError turns the errors reported by the validator into one
// error per failed constraint.
func formatValidationError(what string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", what, err)
	}
	errs := make([]error, 0, len(verrs))
	for _, e := range verrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s: %s is required", what, field))
		case "min", "gte":
			errs = append(errs, fmt.Errorf("%s: %s must be at least %s", what, field, e.Param()))
		case "lt", "lte":
			errs = append(errs, fmt.Errorf("%s: %s is out of range (%s %s)", what, field, e.Tag(), e.Param()))
		default:
			if e.Param() != "" {
				errs = append(errs, fmt.Errorf("%s: %s failed %s (%s)", what, field, e.Tag(), e.Param()))
			} else {
				errs = append(errs, fmt.Errorf("%s: %s failed %s", what, field, e.Tag()))
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
