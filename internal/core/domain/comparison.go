package domain

// Bounds on the number of properties in one comparison.
const (
	MinCompare = 2
	MaxCompare = 4
)

// ComparisonRow is one attribute across every compared property.
type ComparisonRow struct {
	Label  string
	Values []string
}

// Comparison is a side-by-side view with one column per property,
// in the order the ids were requested.
type Comparison struct {
	Properties []Property
	Rows       []ComparisonRow

	// Range is set when the comparison includes stay pricing.
	Range *DateRange
}

// Nights returns the stay length of a dated comparison, or 0.
func (c *Comparison) Nights() int {
	if c.Range == nil {
		return 0
	}
	return c.Range.Nights()
}

// Row returns the row with the given label.
func (c *Comparison) Row(label string) (ComparisonRow, bool) {
	for _, r := range c.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return ComparisonRow{}, false
}
