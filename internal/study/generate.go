package study

import (
	"fmt"
	"strings"
)

const (
	keyPointCount  = 5
	flashcardCount = 4
)

// Fallback answers used when the text has fewer sentences than a card needs.
const (
	fallbackTopicAnswer        = "Main concept explanation"
	fallbackSignificanceAnswer = "Detailed explanation of the concept"
	fallbackRelationAnswer     = "Connection and relationship explanation"
	fallbackImplicationAnswer  = "Impact and implications"
)

// Generate derives study content from text for the given mode. The result
// depends only on its inputs; the only error is ErrUnknownMode.
func Generate(text string, mode Mode) (Content, error) {
	words := splitWords(text)
	switch mode {
	case ModeSummary:
		return buildSummary(words), nil
	case ModeKeyPoints:
		return buildKeyPoints(words), nil
	case ModeFlashcards:
		return buildFlashcards(words, splitSentences(text)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

func buildSummary(words []string) Summary {
	mid := len(words) / 2
	return Summary{Text: fmt.Sprintf(
		"This content discusses %s and covers key concepts including %s. The main takeaway focuses on %s.",
		join(window(words, 0, 3)),
		join(window(words, mid, 3)),
		join(tail(words, 5)),
	)}
}

func buildKeyPoints(words []string) KeyPoints {
	n := len(words)
	quarter := n / 4
	half := n / 2
	threeQuarters := n * 3 / 4
	points := make([]string, 0, keyPointCount)
	points = append(points,
		"Primary concept: "+join(window(words, 0, 8)),
		"Key methodology: "+join(window(words, quarter, 6)),
		"Important detail: "+join(window(words, half, 7)),
		"Critical insight: "+join(window(words, threeQuarters, 5)),
		"Final consideration: "+join(tail(words, 6)),
	)
	return KeyPoints{Points: points}
}

func buildFlashcards(words, sentences []string) Flashcards {
	n := len(words)
	cards := make([]Flashcard, 0, flashcardCount)
	cards = append(cards,
		Flashcard{
			Question: fmt.Sprintf("What is the main topic discussed in \"%s...\"?", join(window(words, 0, 4))),
			Answer:   sentenceOr(sentences, 0, fallbackTopicAnswer),
		},
		Flashcard{
			Question: "Explain the significance of " + wordAt(words, n/3),
			Answer:   sentenceOr(sentences, 1, fallbackSignificanceAnswer),
		},
		Flashcard{
			Question: fmt.Sprintf("How does %s relate to the overall topic?", wordAt(words, n/2)),
			Answer:   sentenceOr(sentences, 2, fallbackRelationAnswer),
		},
		Flashcard{
			Question: fmt.Sprintf("What are the key implications of %s?", join(tail(words, 3))),
			Answer:   sentenceOr(sentences, len(sentences)-1, fallbackImplicationAnswer),
		},
	)
	return Flashcards{Cards: cards}
}

func splitWords(text string) []string {
	return strings.Fields(text)
}

// splitSentences cuts on '.' and drops segments that are blank once trimmed.
func splitSentences(text string) []string {
	segments := strings.Split(text, ".")
	sentences := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		sentences = append(sentences, segment)
	}
	return sentences
}

// window returns up to n words starting at start, clamped to the slice.
func window(words []string, start, n int) []string {
	if start < 0 {
		start = 0
	}
	if start >= len(words) || n <= 0 {
		return nil
	}
	end := start + n
	if end > len(words) {
		end = len(words)
	}
	return words[start:end]
}

// tail returns the last n words, or all of them when fewer exist.
func tail(words []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if n >= len(words) {
		return words
	}
	return words[len(words)-n:]
}

func wordAt(words []string, idx int) string {
	if idx < 0 || idx >= len(words) {
		return ""
	}
	return words[idx]
}

func sentenceOr(sentences []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(sentences) {
		return fallback
	}
	return sentences[idx]
}

func join(words []string) string {
	return strings.Join(words, " ")
}
