package services

// catalog is the blank estimate every new project, reset and standard line is
// cloned from. It is never handed out directly.
var catalog = Project{
	Inputs: DefaultInputs(),
	Sheets: []Sheet{
		{
			Name:          "Interior Paint",
			UseGlobalRate: true,
			Lines: []Line{
				stdLine("Walls (sq ft)", "sqft", 1.25, 0.0015),
				stdLine("Ceilings (sq ft)", "sqft", 0.85, 0.0012),
				stdLine("Trim (linear ft)", "lft", 0.65, 0.0009),
				stdLine("Doors (each)", "ea", 18, 0.25),
				customLine(55),
			},
		},
		{
			Name:          "Exterior Paint",
			UseGlobalRate: true,
			Lines: []Line{
				stdLine("Siding (sq ft)", "sqft", 1.8, 0.002),
				stdLine("Trim (linear ft)", "lft", 0.9, 0.001),
				customLine(55),
			},
		},
		{
			Name:          "Flooring",
			UseGlobalRate: true,
			Lines: []Line{
				stdLine("LVP install (sq ft)", "sqft", 2.2, 0.002),
				stdLine("Carpet install (sq ft)", "sqft", 1.5, 0.0015),
				stdLine("Floor prep (sq ft)", "sqft", 0.6, 0.001),
				customLine(55),
			},
		},
		{
			Name:          "Finishing",
			UseGlobalRate: true,
			Lines: []Line{
				stdLine("Baseboard (linear ft)", "lft", 1.8, 0.0012),
				stdLine("Caulk/patch (room)", "ea", 12, 0.4),
				customLine(55),
			},
		},
	},
}

// DefaultInputs returns the project settings a blank estimate starts with.
func DefaultInputs() ProjectInputs {
	return ProjectInputs{
		CrewRate: 55,
		Markup:   15,
		WastePct: 5,
	}
}

// DefaultProject returns a fresh copy of the blank estimate.
func DefaultProject() Project {
	return catalog.Clone()
}

// StandardLines returns copies of the catalog's predefined lines for the named
// sheet. Sheets the catalog does not know have none.
func StandardLines(sheetName string) []Line {
	idx := catalog.SheetIndex(sheetName)
	if idx < 0 {
		return nil
	}
	var lines []Line
	for _, l := range catalog.Sheets[idx].Lines {
		if !l.Custom {
			lines = append(lines, l.Clone())
		}
	}
	return lines
}

// NewCustomLine returns an empty ad-hoc line billed at rate.
func NewCustomLine(rate float64) Line {
	return customLine(rate)
}

func stdLine(desc, unit string, matUnit, hoursPerQty float64) Line {
	return Line{
		Desc:        desc,
		Unit:        unit,
		MatUnit:     matUnit,
		HoursPerQty: hoursPerQty,
		RateType:    RateTypeCrew,
	}
}

func customLine(rate float64) Line {
	return Line{
		Desc:     "Custom item",
		Unit:     "ea",
		RateType: RateTypeCustom,
		Rate:     floatPtr(rate),
		Custom:   true,
	}
}
