package prim

import (
	"testing"
)

func TestTransistorFamilies(t *testing.T) {
	l := &Layer{Name: "Node"}
	for _, four := range []bool{false, true} {
		f := TransistorFamily(l, four)
		if err := f.Validate(); err != nil {
			t.Errorf("four-terminal %t: %v", four, err)
		}
		diff(t, 2*int(TransistorKinds), len(f.Alternatives))
		for k := range TransistorKinds {
			for _, nType := range []bool{true, false} {
				v := f.Select(TransistorCode(k, nType))
				diff(t, TransistorFunction(k, nType, four), v.Function)
			}
		}
	}
}

func TestVariantSelect(t *testing.T) {
	np := NewSchematics().Node(TransistorName)
	for _, code := range []int{-1, -7, 2 * int(TransistorKinds), 1000} {
		v := np.Family.Select(code)
		diff(t, -1, v.Code)
		diff(t, np.Family.Base, v.Templates)
		ni := np.NewInstance().WithVariant(code)
		diff(t, "TRANMOS", ni.Function().String())
	}
	ni := np.NewInstance().WithVariant(TransistorCode(KindHighThreshold, false))
	diff(t, "TRAPMOSVTH", ni.Function().String())
}

func TestVariantFamilyValidate(t *testing.T) {
	l := &Layer{Name: "L"}
	a := NewTemplate(l, Opened, CP(0, 0), CP(1, 0))
	b := NewTemplate(l, Opened, CP(0, 1), CP(1, 1))

	ok := &VariantFamily{
		Base: []ShapeTemplate{a},
		Alternatives: []Variant{
			{Code: 0, Templates: []ShapeTemplate{a, b}, Function: FuncAnd},
			{Code: 1, Templates: []ShapeTemplate{b}, Function: FuncOr},
		},
	}
	if err := ok.Validate(); err != nil {
		t.Fatal(err)
	}
	diff(t, []ShapeTemplate{a, b}, ok.Merged())

	bad := &VariantFamily{
		Alternatives: []Variant{
			{Code: 0, Templates: []ShapeTemplate{a}, Function: FuncAnd},
			{Code: 2, Templates: nil, Function: FuncAnd},
		},
	}
	if err := bad.Validate(); err == nil {
		t.Error("invalid family passed validation")
	}
}

func TestMergedOrder(t *testing.T) {
	l := &Layer{Name: "L"}
	tpl := func(y float64) ShapeTemplate { return NewTemplate(l, Opened, CP(0, y), CP(1, y)) }
	a, b, c, d := tpl(0), tpl(1), tpl(2), tpl(3)
	f := &VariantFamily{
		Base: []ShapeTemplate{a},
		Alternatives: []Variant{
			{Code: 0, Templates: []ShapeTemplate{a, c}},
			{Code: 1, Templates: []ShapeTemplate{a, b, c}, Function: 1},
			{Code: 2, Templates: []ShapeTemplate{b, d}, Function: 2},
		},
	}
	merged := f.Merged()
	for _, v := range f.Alternatives {
		if !isSubsequence(v.Templates, merged) {
			t.Errorf("alternative %d not in %d merged templates", v.Code, len(merged))
		}
	}
	diff(t, 4, len(merged))
}

func TestBuildTransistorDescription(t *testing.T) {
	l := &Layer{Name: "Node"}
	styles := func(ts []ShapeTemplate) []Style {
		out := make([]Style, len(ts))
		for i, t := range ts {
			out[i] = t.Style
		}
		return out
	}
	tests := []struct {
		kind  TransistorKind
		nType bool
		four  bool
		want  []Style
	}{
		{KindPlain, true, false, []Style{Opened, Opened, Opened}},
		{KindPlain, false, false, []Style{Opened, Opened, Circle, Opened}},
		{KindDepletion, true, false, []Style{Opened, Filled, Opened, Opened}},
		{KindFloatingGate, true, false, []Style{Opened, Opened, Opened, Opened}},
		{KindHighVoltage3, true, false, []Style{Opened, Opened, Opened, Vectors, Vectors, Vectors}},
		{KindNative, true, true, []Style{Opened, Opened, Opened, Opened, Opened}},
		{KindNanotube, true, false, []Style{Opened, Opened, Circle, Circle, Circle, Circle, Opened, Opened}},
		{KindDepletion, true, true, []Style{Opened, Filled, Opened, Opened, OpenedDashed}},
	}
	for _, tt := range tests {
		ts := BuildTransistorDescription(l, tt.kind.Flags(tt.nType, tt.four))
		diff(t, tt.want, styles(ts))
	}
}

func TestBuildTransistorDescriptionDeterministic(t *testing.T) {
	l := &Layer{Name: "Node"}
	f := KindHighThreshold.Flags(false, true)
	a := BuildTransistorDescription(l, f)
	b := BuildTransistorDescription(l, f)
	diff(t, a, b)

	a[0].Points[0] = CP(100, 100)
	if b[0].Points[0] == a[0].Points[0] {
		t.Error("descriptions share point storage")
	}
}

func TestThresholdShift(t *testing.T) {
	l := &Layer{Name: "Node"}
	stub := func(k TransistorKind) float64 {
		ts := BuildTransistorDescription(l, k.Flags(true, false))
		return ts[1].Resolve(Sz(4, 4))[0].Y
	}
	if lo, n, hi := stub(KindLowThreshold), stub(KindPlain), stub(KindHighThreshold); !(lo < n && n < hi) {
		t.Errorf("gate stubs at %g, %g, %g", lo, n, hi)
	}
}

func TestFunctionNames(t *testing.T) {
	tests := []struct {
		f    Function
		want string
	}{
		{FuncAnd, "GATEAND"},
		{TransistorFunction(KindPlain, true, false), "TRANMOS"},
		{TransistorFunction(KindDepletion, false, true), "TRA4PMOSD"},
		{TransistorFunction(KindNanotube, true, true), "TRA4NMOSCN"},
		{TransistorFunction(KindHighVoltage2, false, false), "TRAPMOSHV2"},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.f.String())
		got, err := ParseFunction(tt.want)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, tt.f, got)
	}
	if _, err := ParseFunction("TRAXMOS"); err == nil {
		t.Error("parsed unknown function")
	}
	if !TransistorFunction(KindNative, false, true).IsTransistor() || FuncSwitch.IsTransistor() {
		t.Error("IsTransistor")
	}
}
