package risk

// Buckets partitions findings by severity for the tabbed review display.
// Only high, medium and low are selectable tabs; info findings stay in the
// report's full findings sequence but are never surfaced as a bucket.
type Buckets struct {
	bySeverity map[Severity][]Finding
	Counts     map[Severity]int
}

// TabSeverities returns the severities that appear as selectable tabs, in
// fixed priority order.
func TabSeverities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow}
}

// BucketBySeverity partitions findings into severity buckets, preserving
// input order within each bucket.
func BucketBySeverity(findings []Finding) Buckets {
	b := Buckets{
		bySeverity: make(map[Severity][]Finding),
		Counts:     make(map[Severity]int),
	}
	for _, f := range findings {
		b.bySeverity[f.Severity] = append(b.bySeverity[f.Severity], f)
		b.Counts[f.Severity]++
	}
	return b
}

// Bucket returns the findings of the given severity in input order.
func (b Buckets) Bucket(s Severity) []Finding {
	return b.bySeverity[s]
}

// DefaultTab selects the initially active severity tab: the first of
// high, medium, low with a nonzero count. When every bucket is empty it
// falls back to high, which callers must render as an inert empty tab.
func (b Buckets) DefaultTab() Severity {
	for _, s := range TabSeverities() {
		if b.Counts[s] > 0 {
			return s
		}
	}
	return SeverityHigh
}
