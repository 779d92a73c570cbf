package model

import "strings"

// SummaryLength selects one of the summary variants of a course
type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

// DefaultSummaryLength is the variant requested when a course opens
const DefaultSummaryLength = SummaryShort

// SummaryLengths returns the variants in display order
func SummaryLengths() []SummaryLength {
	return []SummaryLength{SummaryShort, SummaryMedium, SummaryLong}
}

// ParseSummaryLength maps user input onto a known variant
func ParseSummaryLength(s string) (SummaryLength, bool) {
	switch SummaryLength(strings.ToLower(strings.TrimSpace(s))) {
	case SummaryShort:
		return SummaryShort, true
	case SummaryMedium:
		return SummaryMedium, true
	case SummaryLong:
		return SummaryLong, true
	}
	return "", false
}

// Label returns the capitalised name used on buttons
func (l SummaryLength) Label() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Summary is one generated summary variant
type Summary struct {
	Length SummaryLength `json:"length"`
	Text   string        `json:"text"`
}

// IsEmpty reports whether the backend has no summary for the variant yet
func (s Summary) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == ""
}

// SummaryKey is the resource key of a summary fetch
type SummaryKey struct {
	CourseID int
	Length   SummaryLength
}

// Flashcard is one card of a course's set
type Flashcard struct {
	ID      string `json:"id"`
	Index   int    `json:"index"`
	Front   string `json:"front"`
	Back    string `json:"back"`
	Flipped bool   `json:"-"`
}

// Face returns the text currently facing the user
func (f Flashcard) Face() string {
	if f.Flipped {
		return f.Back
	}
	return f.Front
}

// FlashcardSet is the ordered set of cards of a course
type FlashcardSet struct {
	Cards []Flashcard `json:"cards"`
}

// Len returns the number of cards
func (fs *FlashcardSet) Len() int {
	return len(fs.Cards)
}

// Toggle flips the card at position i and reports whether it exists.
// Only the Flipped flag changes.
func (fs *FlashcardSet) Toggle(i int) bool {
	if i < 0 || i >= len(fs.Cards) {
		return false
	}
	fs.Cards[i].Flipped = !fs.Cards[i].Flipped
	return true
}

// Replace swaps the whole set, as after a regenerate. Flip state is reset.
func (fs *FlashcardSet) Replace(cards []Flashcard) {
	fresh := make([]Flashcard, len(cards))
	for i, c := range cards {
		c.Flipped = false
		fresh[i] = c
	}
	fs.Cards = fresh
}
