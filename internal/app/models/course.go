package models

// Term is the structured form of a course's duration. ExtraYears holds the
// trailing "+ 1" of programs such as "3 + 1 yrs".
type Term struct {
	Years      int `json:"years"`
	ExtraYears int `json:"extraYears"`
}

// TotalYears returns the number of years a scholarship is applied for.
func (t Term) TotalYears() int {
	return t.Years + t.ExtraYears
}

// Course represents a program offered by the university.
type Course struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Duration    string   `json:"duration"` // Display text, e.g. "3 + 1 yrs"
	Term        Term     `json:"term"`
	AnnualFee   int64    `json:"annualFee"`
	Category    string   `json:"category"`
	Description *string  `json:"description"` // Nullable
	Tags        []string `json:"tags,omitempty"`
}

// HasTag reports whether the course carries the given derived tag.
func (c *Course) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate stored records.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Description != nil {
		d := *c.Description
		cp.Description = &d
	}
	if c.Tags != nil {
		cp.Tags = append([]string(nil), c.Tags...)
	}
	return &cp
}

// Well-known course categories.
const (
	CategoryAll           = "all"
	CategoryUndergraduate = "undergraduate"
	CategoryPostgraduate  = "postgraduate"
	CategoryCertificate   = "certificate"
	CategoryIT            = "it"
)
