package search

import (
	"strings"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
)

// Phase is the request lifecycle state of a search session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseDone
)

// TopKChoices is the closed set of selectable result sizes.
var TopKChoices = []int{5, 10, 20, 50}

// DefaultTopK is the result size a fresh session starts with.
const DefaultTopK = 10

// Session holds the state behind the search page. It is driven from a
// single event loop: Begin issues a request, and exactly one of Resolve or
// Fail is applied for it. Responses carry the sequence number Begin handed
// out; anything but the latest sequence is discarded, so a superseded
// in-flight search can never clobber newer results.
//
// A failed search deliberately collapses to an empty result set rather
// than an error phase; the caller decides whether to surface the error
// elsewhere.
type Session struct {
	query     string
	selected  map[clause.Type]struct{}
	order     []clause.Type
	topK      int
	phase     Phase
	hits      []Hit
	totalHits int
	searched  bool
	seq       uint64
}

// NewSession returns an idle session with no filter and the default
// result size.
func NewSession() *Session {
	return &Session{
		selected: make(map[clause.Type]struct{}),
		topK:     DefaultTopK,
	}
}

// SetQuery replaces the query text.
func (s *Session) SetQuery(q string) { s.query = q }

// Query returns the current query text as typed.
func (s *Session) Query() string { return s.query }

// ToggleType flips membership of t in the type filter. An empty selection
// means no filter: all types.
func (s *Session) ToggleType(t clause.Type) {
	if _, ok := s.selected[t]; ok {
		delete(s.selected, t)
		for i, u := range s.order {
			if u == t {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.selected[t] = struct{}{}
	s.order = append(s.order, t)
}

// TypeSelected reports whether t is part of the filter.
func (s *Session) TypeSelected(t clause.Type) bool {
	_, ok := s.selected[t]
	return ok
}

// SelectedTypes returns the filter in toggle order, nil when unfiltered.
func (s *Session) SelectedTypes() []clause.Type {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]clause.Type, len(s.order))
	copy(out, s.order)
	return out
}

// TopK returns the current result size.
func (s *Session) TopK() int { return s.topK }

// SetTopK sets the result size if k is one of TopKChoices.
func (s *Session) SetTopK(k int) {
	for _, c := range TopKChoices {
		if c == k {
			s.topK = k
			return
		}
	}
}

// CycleTopK advances the result size to the next choice, wrapping around.
func (s *Session) CycleTopK() {
	for i, c := range TopKChoices {
		if c == s.topK {
			s.topK = TopKChoices[(i+1)%len(TopKChoices)]
			return
		}
	}
	s.topK = DefaultTopK
}

// Phase returns the request lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Hits returns the current result list.
func (s *Session) Hits() []Hit { return s.hits }

// TotalHits returns the service-reported total for the last search.
func (s *Session) TotalHits() int { return s.totalHits }

// Searched reports whether at least one search has completed; the results
// banner is only shown after that.
func (s *Session) Searched() bool { return s.searched }

// Begin starts a search. It is a no-op returning ok=false when the
// trimmed query is empty; no request may be issued then and the phase is
// left untouched. Otherwise the session enters Loading and the returned
// request must be resolved with the returned sequence number.
func (s *Session) Begin() (req Request, seq uint64, ok bool) {
	trimmed := strings.TrimSpace(s.query)
	if trimmed == "" {
		return Request{}, 0, false
	}
	s.seq++
	s.phase = PhaseLoading
	return Request{
		Query:       trimmed,
		ClauseTypes: s.SelectedTypes(),
		TopK:        s.topK,
	}, s.seq, true
}

// Resolve applies a successful response. Stale sequences are discarded.
func (s *Session) Resolve(seq uint64, resp Response) {
	if seq != s.seq {
		return
	}
	s.hits = resp.Hits
	s.totalHits = resp.TotalHits
	s.phase = PhaseDone
	s.searched = true
}

// Fail applies a failed search: results clear and the phase completes.
// The searched flag is left alone, so the results banner never announces
// a count for a search that did not happen.
func (s *Session) Fail(seq uint64) {
	if seq != s.seq {
		return
	}
	s.hits = nil
	s.totalHits = 0
	s.phase = PhaseDone
}
