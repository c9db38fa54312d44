package search_test

import (
	"strings"
	"testing"

	"github.com/clauseguard/clausectl/pkg/domain/search"
)

func TestSanitizeHighlightKeepsEmphasis(t *testing.T) {
	got := search.SanitizeHighlight(`The <em>indemnifying</em> party shall...`)
	if got != `The <em>indemnifying</em> party shall...` {
		t.Errorf("emphasis stripped: %q", got)
	}
}

func TestSanitizeHighlightStripsDangerousMarkup(t *testing.T) {
	cases := []struct {
		in      string
		forbade string
	}{
		{`<script>alert(1)</script>hello`, "<script"},
		{`<a href="http://evil">click</a>`, "<a"},
		{`<img src=x onerror=alert(1)>text`, "<img"},
		{`<div onclick="x">block</div>`, "<div"},
	}
	for _, tc := range cases {
		got := search.SanitizeHighlight(tc.in)
		if strings.Contains(got, tc.forbade) {
			t.Errorf("SanitizeHighlight(%q) kept %s: %q", tc.in, tc.forbade, got)
		}
	}
}

func TestSnippetPrefersHighlights(t *testing.T) {
	hit := search.Hit{
		Text:       strings.Repeat("x", 500),
		Highlights: []string{"<em>cap</em> on liability", "second fragment"},
	}
	frags := search.Snippet(hit)
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2", len(frags))
	}
	if frags[0] != "<em>cap</em> on liability" {
		t.Errorf("fragment altered: %q", frags[0])
	}
}

func TestSnippetTruncatesRawText(t *testing.T) {
	long := strings.Repeat("a", 500)
	hit := search.Hit{Text: long}
	frags := search.Snippet(hit)
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	if want := strings.Repeat("a", 400) + "..."; frags[0] != want {
		t.Errorf("truncation wrong: len=%d", len(frags[0]))
	}
	// The hit's stored text is never altered.
	if hit.Text != long {
		t.Errorf("hit text mutated")
	}

	short := search.Hit{Text: "short clause"}
	if got := search.Snippet(short)[0]; got != "short clause" {
		t.Errorf("short text altered: %q", got)
	}
}

func TestSplitEmphasis(t *testing.T) {
	segs := search.SplitEmphasis("a <em>b</em> c <strong>d</strong>")
	want := []search.EmphasisSegment{
		{Text: "a ", Emphasized: false},
		{Text: "b", Emphasized: true},
		{Text: " c ", Emphasized: false},
		{Text: "d", Emphasized: true},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d: %v", len(segs), len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestSplitEmphasisPlainText(t *testing.T) {
	segs := search.SplitEmphasis("no markup at all")
	if len(segs) != 1 || segs[0].Emphasized || segs[0].Text != "no markup at all" {
		t.Errorf("plain text mangled: %v", segs)
	}
}
