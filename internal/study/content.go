package study

import (
	"fmt"
	"strings"
)

// Content is the result of one generation call. The concrete type is one of
// Summary, KeyPoints or Flashcards.
type Content interface {
	Mode() Mode
	isContent()
}

// Summary is the single paragraph produced in summary mode.
type Summary struct {
	Text string
}

// KeyPoints holds the fixed list of labelled points.
type KeyPoints struct {
	Points []string
}

// Flashcard is one question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Flashcards holds the generated deck.
type Flashcards struct {
	Cards []Flashcard
}

func (Summary) Mode() Mode    { return ModeSummary }
func (KeyPoints) Mode() Mode  { return ModeKeyPoints }
func (Flashcards) Mode() Mode { return ModeFlashcards }

func (Summary) isContent()    {}
func (KeyPoints) isContent()  {}
func (Flashcards) isContent() {}

// Plain renders content as plain text suitable for a clipboard or stdout.
func Plain(content Content) string {
	switch c := content.(type) {
	case Summary:
		return c.Text
	case KeyPoints:
		lines := make([]string, 0, len(c.Points))
		for i, point := range c.Points {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, point))
		}
		return strings.Join(lines, "\n")
	case Flashcards:
		blocks := make([]string, 0, len(c.Cards))
		for i, card := range c.Cards {
			blocks = append(blocks, fmt.Sprintf("%d) Q: %s\n   A: %s", i+1, card.Question, card.Answer))
		}
		return strings.Join(blocks, "\n\n")
	default:
		return ""
	}
}

// Document is the serialisable form of a Content value.
type Document struct {
	Mode       Mode        `json:"mode"`
	Summary    string      `json:"summary,omitempty"`
	KeyPoints  []string    `json:"keyPoints,omitempty"`
	Flashcards []Flashcard `json:"flashcards,omitempty"`
}

// NewDocument wraps content for encoding. It returns false for nil content.
func NewDocument(content Content) (Document, bool) {
	switch c := content.(type) {
	case Summary:
		return Document{Mode: ModeSummary, Summary: c.Text}, true
	case KeyPoints:
		return Document{Mode: ModeKeyPoints, KeyPoints: append([]string(nil), c.Points...)}, true
	case Flashcards:
		return Document{Mode: ModeFlashcards, Flashcards: append([]Flashcard(nil), c.Cards...)}, true
	default:
		return Document{}, false
	}
}
