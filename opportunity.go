package mimic

// Priority ranks how much value converting an opportunity delivers.
type Priority string

// Priority levels.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Opportunity types reported by the template analyzer.
const (
	OppSearchForm  = "Search Form"
	OppFormSubmit  = "Form Submit"
	OppNavLink     = "Nav Link"
	OppPagination  = "Pagination"
	OppContentList = "Content List"
	OppDelete      = "Delete Action"
	OppModal       = "Modal Trigger"
	OppTab         = "Tab Navigation"
)

// Opportunity is one place in a template where an AJAX partial update
// would improve the page.
type Opportunity struct {
	Type       string         `json:"type"`
	Pos        OpportunityPos `json:"pos"`
	Element    string         `json:"element"`
	Suggestion string         `json:"suggestion"`
	Priority   Priority       `json:"priority"`
}

// OpportunityPos locates an opportunity in a template file.
type OpportunityPos struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
}

// Analysis is the result of scanning a template tree.
type Analysis struct {
	Opportunities []Opportunity
	Stats         ScanStats
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// ByType groups opportunities by their type.
func (a *Analysis) ByType() map[string][]Opportunity {
	byType := make(map[string][]Opportunity)
	for _, opp := range a.Opportunities {
		byType[opp.Type] = append(byType[opp.Type], opp)
	}
	return byType
}

// PriorityCounts tallies opportunities per priority level.
func (a *Analysis) PriorityCounts() (high, medium, low int) {
	for _, opp := range a.Opportunities {
		switch opp.Priority {
		case PriorityHigh:
			high++
		case PriorityMedium:
			medium++
		case PriorityLow:
			low++
		}
	}
	return high, medium, low
}
