package services

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

var (
	ErrSheetNotFound        = errors.New("sheet not found")
	ErrLineNotFound         = errors.New("line not found")
	ErrUnknownField         = errors.New("unknown field")
	ErrStandardLineNotFound = errors.New("standard line not found")
)

// SetInput writes one project input from its raw form value. Text inputs are
// stored verbatim; numeric inputs that do not parse become 0.
func (p *Project) SetInput(field, raw string) error {
	in := &p.Inputs
	switch field {
	case "clientName":
		in.ClientName = raw
	case "projectAddress":
		in.ProjectAddress = raw
	case "crewRate":
		in.CrewRate = ToNumber(raw)
	case "markup":
		in.Markup = ToNumber(raw)
	case "tax":
		in.Tax = ToNumber(raw)
	case "travelFees":
		in.TravelFees = ToNumber(raw)
	case "disposalFee":
		in.DisposalFee = ToNumber(raw)
	case "discount":
		in.Discount = ToNumber(raw)
	case "wastePct":
		in.WastePct = ToNumber(raw)
	case "clientMode":
		in.ClientMode = cast.ToBool(raw) || raw == "on"
	default:
		return fmt.Errorf("input %q: %w", field, ErrUnknownField)
	}
	return nil
}

// SetSheetRate stores the sheet's own labor rate.
func (p *Project) SetSheetRate(sheetIdx int, raw string) error {
	s, err := p.sheet(sheetIdx)
	if err != nil {
		return err
	}
	s.SheetRate = floatPtr(ToNumber(raw))
	return nil
}

// SetUseGlobalRate switches the sheet between the crew rate and its own rate.
func (p *Project) SetUseGlobalRate(sheetIdx int, on bool) error {
	s, err := p.sheet(sheetIdx)
	if err != nil {
		return err
	}
	s.UseGlobalRate = on
	return nil
}

// SetLineField writes one line field from its raw form value. Editing the
// rate turns the line into a custom-rate line; editing a dimension
// re-derives the quantity straight away.
func (p *Project) SetLineField(sheetIdx, lineIdx int, field, raw string) error {
	l, err := p.line(sheetIdx, lineIdx)
	if err != nil {
		return err
	}

	switch field {
	case "desc":
		l.Desc = raw
	case "unit":
		l.Unit = raw
	case "notes":
		l.Notes = raw
	case "qty":
		l.Qty = ToNumber(raw)
	case "matUnit":
		l.MatUnit = ToNumber(raw)
	case "hoursPerQty":
		l.HoursPerQty = ToNumber(raw)
	case "rate":
		l.Rate = floatPtr(ToNumber(raw))
		l.RateType = RateTypeCustom
	case "dimL":
		l.DimL = ToNumber(raw)
		l.Qty = finite(l.DimL * l.DimW)
	case "dimW":
		l.DimW = ToNumber(raw)
		l.Qty = finite(l.DimL * l.DimW)
	default:
		return fmt.Errorf("line field %q: %w", field, ErrUnknownField)
	}
	return nil
}

// SetUseDims turns length x width quantity mode on or off for a line.
func (p *Project) SetUseDims(sheetIdx, lineIdx int, on bool) error {
	l, err := p.line(sheetIdx, lineIdx)
	if err != nil {
		return err
	}
	l.UseDims = on
	return nil
}

// AddCustomLine appends an ad-hoc line billed at the sheet's current rate.
func (p *Project) AddCustomLine(sheetIdx int) error {
	s, err := p.sheet(sheetIdx)
	if err != nil {
		return err
	}
	s.Lines = append(s.Lines, NewCustomLine(EffectiveSheetRate(*s, p.Inputs)))
	return nil
}

// AddStandardLine appends a copy of the sheet's predefined line stdIdx.
func (p *Project) AddStandardLine(sheetIdx, stdIdx int) error {
	s, err := p.sheet(sheetIdx)
	if err != nil {
		return err
	}
	std := StandardLines(s.Name)
	if stdIdx < 0 || stdIdx >= len(std) {
		return fmt.Errorf("sheet %q standard line %d: %w", s.Name, stdIdx, ErrStandardLineNotFound)
	}
	s.Lines = append(s.Lines, std[stdIdx])
	return nil
}

// DuplicateLine inserts a deep copy of the line directly after it.
func (p *Project) DuplicateLine(sheetIdx, lineIdx int) error {
	l, err := p.line(sheetIdx, lineIdx)
	if err != nil {
		return err
	}
	s := &p.Sheets[sheetIdx]
	clone := l.Clone()
	s.Lines = append(s.Lines[:lineIdx+1], append([]Line{clone}, s.Lines[lineIdx+1:]...)...)
	return nil
}

// RemoveLine deletes the line from its sheet.
func (p *Project) RemoveLine(sheetIdx, lineIdx int) error {
	if _, err := p.line(sheetIdx, lineIdx); err != nil {
		return err
	}
	s := &p.Sheets[sheetIdx]
	s.Lines = append(s.Lines[:lineIdx], s.Lines[lineIdx+1:]...)
	return nil
}

// Reset replaces the whole project with a blank copy of the catalog.
func (p *Project) Reset() {
	*p = DefaultProject()
}

func (p *Project) sheet(idx int) (*Sheet, error) {
	if idx < 0 || idx >= len(p.Sheets) {
		return nil, fmt.Errorf("sheet %d: %w", idx, ErrSheetNotFound)
	}
	return &p.Sheets[idx], nil
}

func (p *Project) line(sheetIdx, lineIdx int) (*Line, error) {
	s, err := p.sheet(sheetIdx)
	if err != nil {
		return nil, err
	}
	if lineIdx < 0 || lineIdx >= len(s.Lines) {
		return nil, fmt.Errorf("sheet %q line %d: %w", s.Name, lineIdx, ErrLineNotFound)
	}
	return &s.Lines[lineIdx], nil
}
