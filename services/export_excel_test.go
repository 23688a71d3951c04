package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleProject() Project {
	p := DefaultProject()
	p.Inputs.ClientName = "Dana Smith"
	p.Inputs.ProjectAddress = "12 Elm St"
	p.Inputs.Tax = 8
	_ = p.SetLineField(0, 0, "qty", "400")
	_ = p.SetLineField(2, 0, "qty", "250")
	_ = p.SetLineField(3, 1, "qty", "3")
	return p
}

func TestGenerateExcel_Workbook(t *testing.T) {
	p := sampleProject()
	data := BuildExportData(p, "Project Estimate", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != len(p.Sheets)+1 {
		t.Fatalf("got sheets %v, want Summary plus %d", sheets, len(p.Sheets))
	}
	if sheets[0] != "Summary" {
		t.Errorf("first sheet = %q, want Summary", sheets[0])
	}
	for i, s := range p.Sheets {
		if sheets[i+1] != s.Name {
			t.Errorf("sheet %d = %q, want %q", i+1, sheets[i+1], s.Name)
		}
	}

	title, _ := f.GetCellValue("Summary", "A1")
	if title != "Project Estimate" {
		t.Errorf("title = %q", title)
	}
	client, _ := f.GetCellValue("Summary", "A2")
	if client != "Client: Dana Smith" {
		t.Errorf("client = %q", client)
	}
	firstService, _ := f.GetCellValue("Summary", "A7")
	if firstService != "Interior Paint" {
		t.Errorf("A7 = %q, want Interior Paint", firstService)
	}

	desc, _ := f.GetCellValue("Interior Paint", "A4")
	if desc != p.Sheets[0].Lines[0].Desc {
		t.Errorf("Interior Paint A4 = %q, want %q", desc, p.Sheets[0].Lines[0].Desc)
	}
	rate, _ := f.GetCellValue("Interior Paint", "F4")
	if rate != "crew@55" {
		t.Errorf("Interior Paint F4 = %q, want crew@55", rate)
	}
}

func TestGenerateExcel_EmptyProject(t *testing.T) {
	data := BuildExportData(Project{}, "Empty", time.Now())

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Summary" {
		t.Errorf("sheets = %v, want [Summary]", sheets)
	}
}

func TestGenerateExcel_SanitizesFormulaInjection(t *testing.T) {
	p := Project{Sheets: []Sheet{{
		Name:          "Misc",
		UseGlobalRate: true,
		Lines:         []Line{{Desc: "=HYPERLINK(\"x\")", Unit: "ea", Qty: 1, RateType: RateTypeCrew}},
	}}}

	result, err := GenerateExcel(BuildExportData(p, "Test", time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("Misc", "A4")
	if got != "'=HYPERLINK(\"x\")" {
		t.Errorf("A4 = %q, want quoted formula", got)
	}
}

func TestWorksheetName(t *testing.T) {
	used := map[string]bool{"Summary": true}

	tests := []struct {
		in     string
		expect string
	}{
		{"Interior Paint", "Interior Paint"},
		{"Doors/Windows [old]", "Doors-Windows -old-"},
		{"Summary", "Summary (2)"},
		{"", "Sheet"},
		{"A very long sheet name that goes on and on", "A very long sheet name that goe"},
		{"A very long sheet name that goes elsewhere", "A very long sheet name that (2)"},
	}

	for _, tt := range tests {
		got := worksheetName(tt.in, used)
		used[got] = true
		if got != tt.expect {
			t.Errorf("worksheetName(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"Walls", "Walls"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
