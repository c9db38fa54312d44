package clause

// Grouped is an ordered partition of extracted clauses by clause type.
// Key order is first-encounter order from a single left-to-right scan, and
// relative clause order within a group matches the input sequence.
type Grouped struct {
	order  []Type
	byType map[Type][]Extracted
}

// GroupByType partitions clauses into per-type groups. Types absent from
// the input produce no group.
func GroupByType(clauses []Extracted) Grouped {
	g := Grouped{byType: make(map[Type][]Extracted)}
	for _, c := range clauses {
		if _, seen := g.byType[c.ClauseType]; !seen {
			g.order = append(g.order, c.ClauseType)
		}
		g.byType[c.ClauseType] = append(g.byType[c.ClauseType], c)
	}
	return g
}

// Types returns the group keys in first-encounter order.
func (g Grouped) Types() []Type {
	out := make([]Type, len(g.order))
	copy(out, g.order)
	return out
}

// Group returns the clauses of the given type in input order.
func (g Grouped) Group(t Type) []Extracted {
	return g.byType[t]
}

// Len returns the total number of clauses across all groups.
func (g Grouped) Len() int {
	n := 0
	for _, cs := range g.byType {
		n += len(cs)
	}
	return n
}

// Default returns the group selected as the initially active tab: the
// first type encountered in the input. ok is false for empty input.
func (g Grouped) Default() (Type, bool) {
	if len(g.order) == 0 {
		return "", false
	}
	return g.order[0], true
}
