package templates

// ActiveEstimate identifies the estimate being edited.
type ActiveEstimate struct {
	ID   string
	Name string
}

// NavTab is one entry of the estimate tab bar.
type NavTab struct {
	Label     string
	URL       string
	Active    bool
	OwnerOnly bool
}

// NavData drives the header: estimate tabs and the owner settings gate.
type NavData struct {
	Estimate         *ActiveEstimate
	Tabs             []NavTab
	OwnerGateEnabled bool
	OwnerUnlocked    bool
}

// OwnerVisible reports whether owner-only tabs are shown.
func (n NavData) OwnerVisible() bool {
	return !n.OwnerGateEnabled || n.OwnerUnlocked
}

// VisibleTabs drops the owner-only tabs while the gate is locked.
func (n NavData) VisibleTabs() []NavTab {
	tabs := make([]NavTab, 0, len(n.Tabs))
	for _, tab := range n.Tabs {
		if tab.OwnerOnly && !n.OwnerVisible() {
			continue
		}
		tabs = append(tabs, tab)
	}
	return tabs
}

// EstimateListItem is one saved estimate in the list view.
type EstimateListItem struct {
	ID             string
	Name           string
	ClientName     string
	ProjectAddress string
	GrandTotal     string
	Updated        string
}

type EstimateListData struct {
	Nav   NavData
	Items []EstimateListItem
}

// TotalsBar is the running subtotal and grand total shown under every
// editable view.
type TotalsBar struct {
	Subtotal   string
	GrandTotal string
	ClientMode bool
}

type InputsData struct {
	Nav            NavData
	EstimateID     string
	ClientName     string
	ProjectAddress string
	CrewRate       string
	Markup         string
	Tax            string
	TravelFees     string
	DisposalFee    string
	Discount       string
	WastePct       string
	ClientMode     bool
	Totals         TotalsBar
}

// LineRow holds one editable line with its live total already formatted.
type LineRow struct {
	Index       int
	Desc        string
	Unit        string
	Qty         string
	MatUnit     string
	HoursPerQty string
	Rate        string // empty for crew lines
	Notes       string
	DimL        string
	DimW        string
	CanUseDims  bool
	UseDims     bool
	Total       string
}

// StandardOption is a predefined line that can be added to a sheet.
type StandardOption struct {
	Index int
	Desc  string
}

type SheetData struct {
	Nav           NavData
	EstimateID    string
	Index         int
	Name          string
	UseGlobalRate bool
	SheetRate     string
	CrewRate      string
	EffectiveRate string
	Advanced      bool
	Lines         []LineRow
	StandardLines []StandardOption
	Totals        TotalsBar
}

type SummaryRow struct {
	Name      string
	Materials string
	Labor     string
	Total     string
}

type SummaryData struct {
	Nav         NavData
	EstimateID  string
	Rows        []SummaryRow
	Subtotal    string
	MarkupLabel string
	Markup      string
	Travel      string
	Disposal    string
	Discount    string
	TaxLabel    string
	Tax         string
	GrandTotal  string
}

type QuoteRow struct {
	Heading string
	Notes   string
	Qty     string
	Unit    string
	Total   string
}

type QuoteData struct {
	Nav            NavData
	EstimateID     string
	ClientName     string
	ProjectAddress string
	Date           string
	Lines          []QuoteRow
	Travel         string
	Disposal       string
	Discount       string
	Tax            string
	Total          string
}
