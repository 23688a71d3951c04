package services

import (
	"math"
	"testing"
	"time"
)

func ptr(f float64) *float64 { return &f }

func TestIsAreaUnit(t *testing.T) {
	tests := []struct {
		unit   string
		expect bool
	}{
		{"sqft", true},
		{"SQFT", true},
		{"SqFt", true},
		{"sq ft", false},
		{"sf", false},
		{"ft2", false},
		{"sqm", false},
		{"m2", false},
		{"lft", false},
		{"ea", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			if got := IsAreaUnit(tt.unit); got != tt.expect {
				t.Errorf("IsAreaUnit(%q) = %v, want %v", tt.unit, got, tt.expect)
			}
		})
	}
}

func TestEffectiveSheetRate(t *testing.T) {
	inputs := ProjectInputs{CrewRate: 55}

	tests := []struct {
		name   string
		sheet  Sheet
		expect float64
	}{
		{"global rate", Sheet{UseGlobalRate: true, SheetRate: ptr(80)}, 55},
		{"sheet override", Sheet{UseGlobalRate: false, SheetRate: ptr(80)}, 80},
		{"override unset", Sheet{UseGlobalRate: false}, 0},
		{"override NaN", Sheet{UseGlobalRate: false, SheetRate: ptr(math.NaN())}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveSheetRate(tt.sheet, inputs); got != tt.expect {
				t.Errorf("EffectiveSheetRate() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestResolveLineRate(t *testing.T) {
	inputs := ProjectInputs{CrewRate: 55}
	sheet := Sheet{UseGlobalRate: false, SheetRate: ptr(70)}

	tests := []struct {
		name   string
		line   Line
		expect float64
	}{
		{"crew uses sheet rate", Line{RateType: RateTypeCrew, Rate: ptr(99)}, 70},
		{"custom uses own rate", Line{RateType: RateTypeCustom, Rate: ptr(90)}, 90},
		{"custom zero falls back", Line{RateType: RateTypeCustom, Rate: ptr(0)}, 70},
		{"custom unset falls back", Line{RateType: RateTypeCustom}, 70},
		{"unknown type behaves as custom", Line{RateType: "weird", Rate: ptr(42)}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLineRate(tt.line, sheet, inputs); got != tt.expect {
				t.Errorf("ResolveLineRate() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name   string
		line   Line
		expect float64
	}{
		{"dims override manual qty", Line{Unit: "sqft", UseDims: true, Qty: 999, DimL: 10, DimW: 4}, 40},
		{"dims off keeps qty", Line{Unit: "sqft", UseDims: false, Qty: 12, DimL: 10, DimW: 4}, 12},
		{"non-area unit keeps qty", Line{Unit: "lft", UseDims: true, Qty: 12, DimL: 10, DimW: 4}, 12},
		{"missing dims give zero", Line{Unit: "SQFT", UseDims: true, Qty: 12}, 0},
		{"other area-like units keep typed qty", Line{Unit: "sf", UseDims: true, Qty: 12, DimL: 3, DimW: 5}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLine(tt.line)
			if got.Qty != tt.expect {
				t.Errorf("NormalizeLine().Qty = %v, want %v", got.Qty, tt.expect)
			}
		})
	}
}

func TestProjectNormalize_MutatesInPlace(t *testing.T) {
	p := Project{Sheets: []Sheet{{
		Lines: []Line{{Unit: "sqft", UseDims: true, Qty: 5, DimL: 10, DimW: 4}},
	}}}

	p.Normalize()

	if got := p.Sheets[0].Lines[0].Qty; got != 40 {
		t.Errorf("Qty after Normalize = %v, want 40", got)
	}
}

func TestCalcLine(t *testing.T) {
	sheet := Sheet{UseGlobalRate: true}

	tests := []struct {
		name      string
		line      Line
		inputs    ProjectInputs
		materials float64
		labor     float64
		total     float64
	}{
		{
			"waste applied to materials",
			Line{Qty: 100, MatUnit: 1.25, RateType: RateTypeCrew},
			ProjectInputs{CrewRate: 55, WastePct: 5},
			131.25, 0, 131.25,
		},
		{
			"labor at crew rate",
			Line{Qty: 1000, HoursPerQty: 0.0015, RateType: RateTypeCrew},
			ProjectInputs{CrewRate: 55},
			0, 82.5, 82.5,
		},
		{
			"custom rate labor",
			Line{Qty: 2, HoursPerQty: 3, RateType: RateTypeCustom, Rate: ptr(40)},
			ProjectInputs{CrewRate: 55},
			0, 240, 240,
		},
		{
			"dims drive quantity",
			Line{Unit: "sqft", UseDims: true, Qty: 1, DimL: 10, DimW: 4, MatUnit: 2, RateType: RateTypeCrew},
			ProjectInputs{},
			80, 0, 80,
		},
		{
			"NaN fields count as zero",
			Line{Qty: math.NaN(), MatUnit: 5, RateType: RateTypeCrew},
			ProjectInputs{CrewRate: 55, WastePct: math.Inf(1)},
			0, 0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLine(tt.line, sheet, tt.inputs)
			if math.Abs(got.Materials-tt.materials) > 0.001 {
				t.Errorf("Materials = %v, want %v", got.Materials, tt.materials)
			}
			if math.Abs(got.Labor-tt.labor) > 0.001 {
				t.Errorf("Labor = %v, want %v", got.Labor, tt.labor)
			}
			if math.Abs(got.Total-tt.total) > 0.001 {
				t.Errorf("Total = %v, want %v", got.Total, tt.total)
			}
		})
	}
}

func TestCalcLine_DoesNotMutateInput(t *testing.T) {
	line := Line{Unit: "sqft", UseDims: true, Qty: 7, DimL: 10, DimW: 4}
	CalcLine(line, Sheet{UseGlobalRate: true}, ProjectInputs{})
	if line.Qty != 7 {
		t.Errorf("CalcLine mutated caller's line: Qty = %v", line.Qty)
	}
}

func TestCalcSheet(t *testing.T) {
	sheet := Sheet{
		Name:          "Interior Paint",
		UseGlobalRate: true,
		Lines: []Line{
			{Qty: 10, MatUnit: 2, HoursPerQty: 1, RateType: RateTypeCrew},
			{Qty: 5, MatUnit: 4, HoursPerQty: 0.5, RateType: RateTypeCustom, Rate: ptr(100)},
		},
	}
	inputs := ProjectInputs{CrewRate: 50}

	got := CalcSheet(sheet, inputs)

	if got.Name != "Interior Paint" {
		t.Errorf("Name = %q", got.Name)
	}
	if math.Abs(got.Materials-40) > 0.001 {
		t.Errorf("Materials = %v, want 40", got.Materials)
	}
	if math.Abs(got.Labor-750) > 0.001 {
		t.Errorf("Labor = %v, want 750", got.Labor)
	}
	if math.Abs(got.Total-790) > 0.001 {
		t.Errorf("Total = %v, want 790", got.Total)
	}
}

func TestCalcSheet_Empty(t *testing.T) {
	got := CalcSheet(Sheet{Name: "Empty"}, ProjectInputs{})
	if got.Materials != 0 || got.Labor != 0 || got.Total != 0 {
		t.Errorf("empty sheet totals = %+v, want zeros", got)
	}
}

func TestCalcProject_TaxOrdering(t *testing.T) {
	p := Project{
		Inputs: ProjectInputs{
			Markup:      15,
			TravelFees:  50,
			DisposalFee: 20,
			Discount:    30,
			Tax:         8,
		},
		Sheets: []Sheet{{
			UseGlobalRate: true,
			Lines:         []Line{{Qty: 1, MatUnit: 1000, RateType: RateTypeCrew}},
		}},
	}

	got := CalcProject(p)

	checks := []struct {
		name   string
		got    float64
		expect float64
	}{
		{"Subtotal", got.Subtotal, 1000},
		{"MarkupAmount", got.MarkupAmount, 150},
		{"TravelAmount", got.TravelAmount, 50},
		{"DisposalAmount", got.DisposalAmount, 20},
		{"DiscountAmount", got.DiscountAmount, 30},
		{"TaxBase", got.TaxBase, 1190},
		{"TaxAmount", got.TaxAmount, 95.20},
		{"GrandTotal", got.GrandTotal, 1285.20},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.expect) > 0.001 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.expect)
		}
	}
}

func TestCalcProject_SheetOrderPreserved(t *testing.T) {
	p := DefaultProject()
	got := CalcProject(p)

	if len(got.Sheets) != len(p.Sheets) {
		t.Fatalf("got %d sheet totals, want %d", len(got.Sheets), len(p.Sheets))
	}
	for i := range p.Sheets {
		if got.Sheets[i].Name != p.Sheets[i].Name {
			t.Errorf("sheet %d = %q, want %q", i, got.Sheets[i].Name, p.Sheets[i].Name)
		}
	}
}

func TestCalcProject_Idempotent(t *testing.T) {
	p := DefaultProject()
	p.Sheets[0].Lines[0].Qty = 400
	p.Sheets[0].Lines[1].UseDims = true
	p.Sheets[0].Lines[1].DimL = 12
	p.Sheets[0].Lines[1].DimW = 14

	first := Recalculate(&p)
	second := Recalculate(&p)

	if first.GrandTotal != second.GrandTotal {
		t.Errorf("GrandTotal changed between runs: %v then %v", first.GrandTotal, second.GrandTotal)
	}
	if got := p.Sheets[0].Lines[1].Qty; got != 168 {
		t.Errorf("normalized Qty = %v, want 168", got)
	}
}

func TestCalcLine_OverflowStaysFinite(t *testing.T) {
	sheet := Sheet{UseGlobalRate: true}
	inputs := ProjectInputs{CrewRate: 55, WastePct: 5, Markup: 15, Tax: 8}
	line := Line{Qty: 1e200, MatUnit: 1e200, HoursPerQty: -1e200, RateType: RateTypeCrew}

	c := CalcLine(line, sheet, inputs)
	for name, v := range map[string]float64{"Materials": c.Materials, "Labor": c.Labor, "Total": c.Total} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want a finite number", name, v)
		}
	}

	p := Project{Inputs: inputs, Sheets: []Sheet{{Name: "Huge", UseGlobalRate: true, Lines: []Line{
		line,
		{Qty: 1e308, MatUnit: 1, RateType: RateTypeCrew},
		{Qty: 1e308, MatUnit: 1, RateType: RateTypeCrew},
	}}}}
	totals := CalcProject(p)
	if math.IsNaN(totals.GrandTotal) || math.IsInf(totals.GrandTotal, 0) {
		t.Errorf("GrandTotal = %v, want a finite number", totals.GrandTotal)
	}
	if _, err := EncodeDocument(p); err != nil {
		t.Errorf("EncodeDocument() error = %v", err)
	}
	q := BuildQuote(p, time.Now())
	for _, l := range q.Lines {
		if math.IsNaN(l.Total) || math.IsInf(l.Total, 0) {
			t.Errorf("quote line %q total = %v, want a finite number", l.Description, l.Total)
		}
	}
}
