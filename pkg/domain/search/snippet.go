package search

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// snippetMaxRunes caps the raw-text fallback snippet length.
const snippetMaxRunes = 400

// highlightPolicy keeps only emphasis markup in server-supplied highlight
// fragments. The service is supposed to emit safe markup, but it is still
// an upstream collaborator; everything outside this subset is stripped.
var highlightPolicy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AllowElements("em", "strong", "mark", "b", "i")
	return p
}()

// SanitizeHighlight reduces a highlight fragment to plain text plus the
// allowed emphasis tags.
func SanitizeHighlight(fragment string) string {
	return highlightPolicy.Sanitize(fragment)
}

// Snippet returns the display fragments for a hit. When the service
// provided highlights, each is sanitized and returned; otherwise the raw
// clause text is truncated to a fixed length with an ellipsis marker,
// never altering the stored text.
func Snippet(h Hit) []string {
	if len(h.Highlights) > 0 {
		out := make([]string, len(h.Highlights))
		for i, frag := range h.Highlights {
			out[i] = SanitizeHighlight(frag)
		}
		return out
	}
	return []string{Truncate(h.Text, snippetMaxRunes)}
}

// Truncate shortens s to at most max runes, appending "..." when anything
// was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// EmphasisSegment is a run of snippet text with an emphasis flag, for
// renderers that cannot inject markup (the terminal).
type EmphasisSegment struct {
	Text       string
	Emphasized bool
}

// SplitEmphasis parses a sanitized fragment into plain and emphasized
// segments. Tags other than the emphasis subset have already been
// stripped by SanitizeHighlight.
func SplitEmphasis(sanitized string) []EmphasisSegment {
	var segs []EmphasisSegment
	rest := sanitized
	for rest != "" {
		open, tag := nextEmphasisTag(rest)
		if open < 0 {
			segs = appendSegment(segs, rest, false)
			break
		}
		if open > 0 {
			segs = appendSegment(segs, rest[:open], false)
		}
		rest = rest[open+len(tag)+2:]
		closing := "</" + tag + ">"
		end := strings.Index(rest, closing)
		if end < 0 {
			segs = appendSegment(segs, rest, true)
			break
		}
		segs = appendSegment(segs, rest[:end], true)
		rest = rest[end+len(closing):]
	}
	return segs
}

func nextEmphasisTag(s string) (int, string) {
	best := -1
	bestTag := ""
	for _, tag := range []string{"em", "strong", "mark", "b", "i"} {
		if i := strings.Index(s, "<"+tag+">"); i >= 0 && (best < 0 || i < best) {
			best = i
			bestTag = tag
		}
	}
	return best, bestTag
}

func appendSegment(segs []EmphasisSegment, text string, emphasized bool) []EmphasisSegment {
	if text == "" {
		return segs
	}
	return append(segs, EmphasisSegment{Text: text, Emphasized: emphasized})
}
