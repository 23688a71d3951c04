package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Rate types a line can carry.
const (
	RateTypeCrew   = "crew"
	RateTypeCustom = "custom"
)

// ProjectInputs holds the project-wide settings shared by every sheet.
type ProjectInputs struct {
	ClientName     string  `json:"clientName"`
	ProjectAddress string  `json:"projectAddress"`
	CrewRate       float64 `json:"crewRate"`
	Markup         float64 `json:"markup"`
	Tax            float64 `json:"tax"`
	TravelFees     float64 `json:"travelFees"`
	DisposalFee    float64 `json:"disposalFee"`
	Discount       float64 `json:"discount"`
	WastePct       float64 `json:"wastePct"`
	ClientMode     bool    `json:"clientMode"`
}

// Sheet is a named service category grouping related lines. SheetRate is
// only authoritative while UseGlobalRate is false.
type Sheet struct {
	Name          string   `json:"name"`
	SheetRate     *float64 `json:"sheetRate"`
	UseGlobalRate bool     `json:"useGlobalRate"`
	Lines         []Line   `json:"lines"`
}

// Line is one billable row of work within a sheet.
type Line struct {
	Desc        string   `json:"desc"`
	Unit        string   `json:"unit"`
	Qty         float64  `json:"qty"`
	MatUnit     float64  `json:"matUnit"`
	HoursPerQty float64  `json:"hoursPerQty"`
	RateType    string   `json:"rateType"`
	Rate        *float64 `json:"rate,omitempty"`
	Notes       string   `json:"notes"`
	DimL        float64  `json:"dimL"`
	DimW        float64  `json:"dimW"`
	UseDims     bool     `json:"useDims"`
	Custom      bool     `json:"custom"`
}

// Project is the whole mutable estimate: inputs plus sheets.
type Project struct {
	Inputs ProjectInputs `json:"inputs"`
	Sheets []Sheet       `json:"sheets"`
}

// Clone returns a deep copy of the line.
func (l Line) Clone() Line {
	if l.Rate != nil {
		l.Rate = floatPtr(*l.Rate)
	}
	return l
}

// Clone returns a deep copy of the sheet and its lines.
func (s Sheet) Clone() Sheet {
	if s.SheetRate != nil {
		s.SheetRate = floatPtr(*s.SheetRate)
	}
	lines := make([]Line, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = l.Clone()
	}
	s.Lines = lines
	return s
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	sheets := make([]Sheet, len(p.Sheets))
	for i, s := range p.Sheets {
		sheets[i] = s.Clone()
	}
	p.Sheets = sheets
	return p
}

// SheetIndex returns the position of the named sheet, or -1.
func (p Project) SheetIndex(name string) int {
	for i, s := range p.Sheets {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// ToNumber coerces any user or document value to a finite float64.
// Anything that does not parse as a number becomes 0.
func ToNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return finite(n)
}

func finite(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func floatPtr(f float64) *float64 {
	return &f
}
