package services

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestRateDescriptor(t *testing.T) {
	inputs := ProjectInputs{CrewRate: 55}
	global := Sheet{UseGlobalRate: true}
	override := Sheet{SheetRate: ptr(72.5)}

	tests := []struct {
		name   string
		line   Line
		sheet  Sheet
		expect string
	}{
		{"crew on global", Line{RateType: RateTypeCrew}, global, "crew@55"},
		{"crew on override", Line{RateType: RateTypeCrew}, override, "crew@72.5"},
		{"custom with rate", Line{RateType: RateTypeCustom, Rate: ptr(60)}, global, "custom@60"},
		{"custom zero rate", Line{RateType: RateTypeCustom, Rate: ptr(0)}, global, "custom@"},
		{"custom unset rate", Line{RateType: RateTypeCustom}, global, "custom@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RateDescriptor(tt.line, tt.sheet, inputs); got != tt.expect {
				t.Errorf("RateDescriptor() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	p := Project{
		Inputs: ProjectInputs{CrewRate: 55, WastePct: 5},
		Sheets: []Sheet{{
			Name:          "Interior Paint",
			UseGlobalRate: true,
			Lines: []Line{
				{Desc: "Walls, two coats", Unit: "sqft", Qty: 100, MatUnit: 1.25, HoursPerQty: 0.0015, RateType: RateTypeCrew, Notes: `say "hi"`},
				{Desc: "Patch", Unit: "ea", Qty: 2, HoursPerQty: 1, RateType: RateTypeCustom, Rate: ptr(40)},
			},
		}},
	}

	data, err := ExportCSV(p)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(csvHeader, ",") {
		t.Errorf("header = %v", records[0])
	}

	walls := records[1]
	expect := []string{"Interior Paint", "Walls, two coats", "sqft", "100", "1.25", "0.0015", "crew@55", `say "hi"`, "131.25", "8.25", "139.50"}
	for i := range expect {
		if walls[i] != expect[i] {
			t.Errorf("walls column %d = %q, want %q", i, walls[i], expect[i])
		}
	}

	if records[2][6] != "custom@40" || records[2][10] != "80.00" {
		t.Errorf("patch row = %v", records[2])
	}
}

func TestExportCSV_Empty(t *testing.T) {
	data, err := ExportCSV(Project{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Errorf("expected header only, got %q", string(data))
	}
}
