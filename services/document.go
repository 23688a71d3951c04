package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// ErrInvalidDocument is returned for load requests that are not a project
// document. The caller's current project must be left as it was.
var ErrInvalidDocument = errors.New("invalid project document")

var validate = validator.New()

// Wire shapes for decoding. Numeric fields are kept loose so that strings,
// nulls and other junk coerce to numbers instead of failing the load.
type documentInputs struct {
	ClientName     any `json:"clientName"`
	ProjectAddress any `json:"projectAddress"`
	CrewRate       any `json:"crewRate"`
	Markup         any `json:"markup"`
	Tax            any `json:"tax"`
	TravelFees     any `json:"travelFees"`
	DisposalFee    any `json:"disposalFee"`
	Discount       any `json:"discount"`
	WastePct       any `json:"wastePct"`
	ClientMode     any `json:"clientMode"`
}

type documentLine struct {
	Desc        any `json:"desc"`
	Unit        any `json:"unit"`
	Qty         any `json:"qty"`
	MatUnit     any `json:"matUnit"`
	HoursPerQty any `json:"hoursPerQty"`
	RateType    any `json:"rateType"`
	Rate        any `json:"rate"`
	Notes       any `json:"notes"`
	DimL        any `json:"dimL"`
	DimW        any `json:"dimW"`
	UseDims     any `json:"useDims"`
	Custom      any `json:"custom"`
}

type documentSheet struct {
	Name          string         `json:"name" validate:"required"`
	SheetRate     any            `json:"sheetRate"`
	UseGlobalRate any            `json:"useGlobalRate"`
	Lines         []documentLine `json:"lines"`
}

type document struct {
	Inputs *documentInputs `json:"inputs" validate:"required"`
	Sheets []documentSheet `json:"sheets" validate:"required,unique=Name,dive"`
}

// EncodeDocument serializes the full project, including derived quantities,
// as an indented JSON document.
func EncodeDocument(p Project) ([]byte, error) {
	if p.Sheets == nil {
		p.Sheets = []Sheet{}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a saved project document. The result is a complete
// replacement for the current project, never a merge into it.
func DecodeDocument(data []byte) (Project, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Project{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := validate.Struct(doc); err != nil {
		return Project{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	in := doc.Inputs
	p := Project{
		Inputs: ProjectInputs{
			ClientName:     cast.ToString(in.ClientName),
			ProjectAddress: cast.ToString(in.ProjectAddress),
			CrewRate:       ToNumber(in.CrewRate),
			Markup:         ToNumber(in.Markup),
			Tax:            ToNumber(in.Tax),
			TravelFees:     ToNumber(in.TravelFees),
			DisposalFee:    ToNumber(in.DisposalFee),
			Discount:       ToNumber(in.Discount),
			WastePct:       ToNumber(in.WastePct),
			ClientMode:     cast.ToBool(in.ClientMode),
		},
		Sheets: make([]Sheet, 0, len(doc.Sheets)),
	}

	for _, ds := range doc.Sheets {
		s := Sheet{
			Name:          ds.Name,
			SheetRate:     optionalNumber(ds.SheetRate),
			UseGlobalRate: cast.ToBool(ds.UseGlobalRate),
			Lines:         make([]Line, 0, len(ds.Lines)),
		}
		for _, dl := range ds.Lines {
			s.Lines = append(s.Lines, Line{
				Desc:        cast.ToString(dl.Desc),
				Unit:        cast.ToString(dl.Unit),
				Qty:         ToNumber(dl.Qty),
				MatUnit:     ToNumber(dl.MatUnit),
				HoursPerQty: ToNumber(dl.HoursPerQty),
				RateType:    cast.ToString(dl.RateType),
				Rate:        optionalNumber(dl.Rate),
				Notes:       cast.ToString(dl.Notes),
				DimL:        ToNumber(dl.DimL),
				DimW:        ToNumber(dl.DimW),
				UseDims:     cast.ToBool(dl.UseDims),
				Custom:      cast.ToBool(dl.Custom),
			})
		}
		p.Sheets = append(p.Sheets, s)
	}
	return p, nil
}

func optionalNumber(v any) *float64 {
	if v == nil {
		return nil
	}
	return floatPtr(ToNumber(v))
}
