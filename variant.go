package prim

import (
	"errors"
	"fmt"
)

// Variant is one alternative of a [VariantFamily].
type Variant struct {
	Code      int
	Templates []ShapeTemplate
	Function  Function
}

// VariantFamily lets one prototype draw several functionally distinct
// symbols. An instance's variant code selects an alternative; codes outside
// the family select the base templates and function.
type VariantFamily struct {
	Base         []ShapeTemplate
	BaseFunction Function
	// Alternatives is indexed by variant code.
	Alternatives []Variant
}

// Select returns the alternative for code. Out-of-range codes produce the
// base variant with code -1.
func (f *VariantFamily) Select(code int) Variant {
	switch {
	case code >= 0 && code < len(f.Alternatives):
		return f.Alternatives[code]
	default:
		return Variant{Code: -1, Templates: f.Base, Function: f.BaseFunction}
	}
}

// Templates returns the templates of the alternative selected by code.
func (f *VariantFamily) Templates(code int) []ShapeTemplate {
	return f.Select(code).Templates
}

// Function returns the function of the alternative selected by code.
func (f *VariantFamily) Function(code int) Function {
	return f.Select(code).Function
}

// Merged returns the master template list of the family: an ordered list of
// which every alternative's templates are a subsequence.
func (f *VariantFamily) Merged() []ShapeTemplate {
	var merged []ShapeTemplate
	for _, v := range f.Alternatives {
		next := 0
		for _, t := range v.Templates {
			j := indexTemplate(merged[next:], t)
			if j < 0 {
				merged = append(merged[:next], append([]ShapeTemplate{t}, merged[next:]...)...)
				next++
				continue
			}
			next += j + 1
		}
	}
	return merged
}

func indexTemplate(ts []ShapeTemplate, t ShapeTemplate) int {
	for i, o := range ts {
		if o.Equal(t) {
			return i
		}
	}
	return -1
}

// isSubsequence reports whether every template of sub occurs in of, in order.
func isSubsequence(sub, of []ShapeTemplate) bool {
	next := 0
	for _, t := range sub {
		j := indexTemplate(of[next:], t)
		if j < 0 {
			return false
		}
		next += j + 1
	}
	return true
}

// Validate checks that codes are dense, functions distinct, template lists
// non-empty, and every alternative a subsequence of the merged list.
func (f *VariantFamily) Validate() error {
	var errs []error
	if len(f.Base) == 0 {
		errs = append(errs, errors.New("empty base templates"))
	}
	seen := make(map[Function]int, len(f.Alternatives))
	merged := f.Merged()
	for i, v := range f.Alternatives {
		if v.Code != i {
			errs = append(errs, fmt.Errorf("alternative %d has code %d", i, v.Code))
		}
		if len(v.Templates) == 0 {
			errs = append(errs, fmt.Errorf("alternative %d has no templates", i))
		}
		if prev, ok := seen[v.Function]; ok {
			errs = append(errs, fmt.Errorf("alternatives %d and %d share function %s", prev, i, v.Function))
		}
		seen[v.Function] = i
		if !isSubsequence(v.Templates, merged) {
			errs = append(errs, fmt.Errorf("alternative %d is not a subsequence of the merged templates", i))
		}
	}
	return errors.Join(errs...)
}
