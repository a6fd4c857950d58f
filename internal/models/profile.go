package models

// TechCategory names one of the detector's output lists.
type TechCategory string

const (
	CategoryFrameworks TechCategory = "frameworks"
	CategoryTools      TechCategory = "tools"
	CategoryDatabases  TechCategory = "databases"
	CategoryDeployment TechCategory = "deployment"
)

// TechProfile is the categorized output of a detection pass. Each category
// list is deduplicated with first-seen order preserved. Deduplication is
// per-category: the same label may appear under two categories when two
// independent rules fire, and that is accepted behavior.
//
// Languages is the byte-count-per-language map supplied by the hosting API,
// passed through unmodified. A TechProfile is never mutated after
// construction.
type TechProfile struct {
	Languages  map[string]int `json:"languages"`
	Frameworks []string       `json:"frameworks"`
	Tools      []string       `json:"tools"`
	Databases  []string       `json:"databases"`
	Deployment []string       `json:"deployment"`
}

// NewTechProfile creates an empty profile carrying the supplied language map.
func NewTechProfile(languages map[string]int) *TechProfile {
	if languages == nil {
		languages = map[string]int{}
	}
	return &TechProfile{Languages: languages}
}

// HasFramework reports whether the given label was detected as a framework.
func (p *TechProfile) HasFramework(label string) bool {
	for _, f := range p.Frameworks {
		if f == label {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no technology was detected in any category.
func (p *TechProfile) IsEmpty() bool {
	return len(p.Frameworks) == 0 && len(p.Tools) == 0 &&
		len(p.Databases) == 0 && len(p.Deployment) == 0
}
