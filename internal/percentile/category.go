package percentile

// Category is the risk label derived from a percentile band.
type Category string

const (
	CategoryCritical Category = "Critical"
	CategoryHighRisk Category = "High Risk"
	CategoryWatch    Category = "Watch"
	CategoryOnTrack  Category = "On Track"
)

var riskCategories = map[Band]Category{
	BandP0:  CategoryCritical,
	BandP10: CategoryHighRisk,
	BandP25: CategoryWatch,
	BandP50: CategoryWatch,
	BandP75: CategoryOnTrack,
	BandP90: CategoryOnTrack,
}

// CategoryFor returns the risk category of a band. Unknown bands are
// treated as Critical.
func CategoryFor(b Band) Category {
	if c, ok := riskCategories[b]; ok {
		return c
	}
	return CategoryCritical
}

// AllCategories returns the categories from most to least severe.
func AllCategories() []Category {
	return []Category{CategoryCritical, CategoryHighRisk, CategoryWatch, CategoryOnTrack}
}

// Color is the indicator color name for the category.
func (c Category) Color() string {
	switch c {
	case CategoryCritical:
		return "red"
	case CategoryHighRisk:
		return "orange"
	case CategoryWatch:
		return "yellow"
	case CategoryOnTrack:
		return "green"
	default:
		return "gray"
	}
}

// Glyph is the colored circle shown next to the category label.
func (c Category) Glyph() string {
	switch c {
	case CategoryCritical:
		return "🔴"
	case CategoryHighRisk:
		return "🟠"
	case CategoryWatch:
		return "🟡"
	case CategoryOnTrack:
		return "🟢"
	default:
		return "⚪"
	}
}

// Badge is the glyph followed by the label, e.g. "🟡 Watch".
func (c Category) Badge() string {
	return c.Glyph() + " " + string(c)
}

// AdvisoryLevel controls how an advisory is styled.
type AdvisoryLevel string

const (
	AdvisoryError   AdvisoryLevel = "error"
	AdvisoryWarning AdvisoryLevel = "warning"
	AdvisoryInfo    AdvisoryLevel = "info"
	AdvisorySuccess AdvisoryLevel = "success"
)

// AdvisoryMessage is the contextual text shown with a result.
type AdvisoryMessage struct {
	Level   AdvisoryLevel `json:"level"`
	Message string        `json:"message"`
}

// Advisory returns the fixed advisory for a category.
func Advisory(c Category) AdvisoryMessage {
	switch c {
	case CategoryCritical:
		return AdvisoryMessage{Level: AdvisoryError, Message: "Fellow is in Critical status. Immediate intervention recommended."}
	case CategoryHighRisk:
		return AdvisoryMessage{Level: AdvisoryWarning, Message: "Fellow is at High Risk. Close monitoring and support needed."}
	case CategoryWatch:
		return AdvisoryMessage{Level: AdvisoryInfo, Message: "Fellow should be monitored. Consider additional support."}
	default:
		return AdvisoryMessage{Level: AdvisorySuccess, Message: "Fellow is On Track. Continue current approach."}
	}
}
