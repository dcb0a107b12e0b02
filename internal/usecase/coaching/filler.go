package coaching

import (
	"strings"
)

// MaxHighlights bounds the highlighted fragments returned per evaluation
const MaxHighlights = 5

// DefaultFillerWords is used when no filler list is configured
var DefaultFillerWords = []string{"um", "uh", "like", "you know", "actually", "basically", "literally"}

// FillerExtractor finds hesitant speech in transcript text
type FillerExtractor struct {
	words []string
	set   map[string]struct{}
}

// NewFillerExtractor normalizes the configured filler words to lower case
func NewFillerExtractor(words []string) *FillerExtractor {
	f := &FillerExtractor{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := f.set[w]; dup {
			continue
		}
		f.set[w] = struct{}{}
		f.words = append(f.words, w)
	}
	return f
}

// Words returns the normalized filler list
func (f *FillerExtractor) Words() []string {
	return append([]string(nil), f.words...)
}

// Extract returns the lower-cased lines that contain any filler word as a substring,
// in transcript order and truncated to MaxHighlights.
func (f *FillerExtractor) Extract(lines []string) []string {
	highlights := make([]string, 0, MaxHighlights)
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, w := range f.words {
			if strings.Contains(lower, w) {
				highlights = append(highlights, lower)
				break
			}
		}
		if len(highlights) == MaxHighlights {
			break
		}
	}
	return highlights
}
