package session

import (
	"strings"

	"github.com/csheth/studyai/internal/study"
)

// State is the complete view state of a study session. Transitions are value
// methods that return the next state, so callers decide when to commit it.
type State struct {
	Text          string
	Mode          study.Mode
	Processing    bool
	Content       study.Content
	Cursor        int
	AnswerVisible bool
}

// Request describes one generation call issued by BeginProcess.
type Request struct {
	Text string
	Mode study.Mode
}

// New returns an idle state with the given mode selected.
func New(mode study.Mode) State {
	if !mode.Valid() {
		mode = study.ModeSummary
	}
	return State{Mode: mode}
}

// SetText replaces the input text.
func (s State) SetText(text string) State {
	s.Text = text
	return s
}

// SetMode selects a mode. Previously generated content is kept.
func (s State) SetMode(mode study.Mode) State {
	if !mode.Valid() {
		return s
	}
	s.Mode = mode
	return s
}

// HasInput reports whether the text contains anything besides whitespace.
func (s State) HasInput() bool {
	return strings.TrimSpace(s.Text) != ""
}

// CanProcess reports whether BeginProcess would start a generation.
func (s State) CanProcess() bool {
	return s.HasInput() && !s.Processing
}

// BeginProcess starts a generation. It clears stale content and marks the
// state as processing. When the input is blank or a generation is already
// running it returns s unchanged and false.
func (s State) BeginProcess() (State, Request, bool) {
	if !s.CanProcess() {
		return s, Request{}, false
	}
	s.Processing = true
	s.Content = nil
	s.Cursor = 0
	s.AnswerVisible = false
	return s, Request{Text: s.Text, Mode: s.Mode}, true
}

// CompleteProcess settles the in-flight generation. Failed or empty results
// leave the content unset. Completions that arrive while idle are ignored.
func (s State) CompleteProcess(content study.Content, err error) State {
	if !s.Processing {
		return s
	}
	s.Processing = false
	if err != nil || content == nil {
		return s
	}
	s.Content = content
	s.Cursor = 0
	s.AnswerVisible = false
	return s
}

func (s State) flashcards() (study.Flashcards, bool) {
	cards, ok := s.Content.(study.Flashcards)
	if !ok || len(cards.Cards) == 0 {
		return study.Flashcards{}, false
	}
	return cards, true
}

// NextFlashcard advances the cursor, wrapping to the first card.
func (s State) NextFlashcard() State {
	cards, ok := s.flashcards()
	if !ok {
		return s
	}
	s.Cursor = (s.Cursor + 1) % len(cards.Cards)
	s.AnswerVisible = false
	return s
}

// PrevFlashcard moves the cursor back, wrapping to the last card.
func (s State) PrevFlashcard() State {
	cards, ok := s.flashcards()
	if !ok {
		return s
	}
	count := len(cards.Cards)
	s.Cursor = ((s.Cursor-1)%count + count) % count
	s.AnswerVisible = false
	return s
}

// ToggleAnswer flips between the question and answer side.
func (s State) ToggleAnswer() State {
	if _, ok := s.flashcards(); !ok {
		return s
	}
	s.AnswerVisible = !s.AnswerVisible
	return s
}

// CurrentCard returns the card under the cursor with its index and the deck
// size.
func (s State) CurrentCard() (study.Flashcard, int, int, bool) {
	cards, ok := s.flashcards()
	if !ok {
		return study.Flashcard{}, 0, 0, false
	}
	idx := s.Cursor
	if idx < 0 || idx >= len(cards.Cards) {
		idx = 0
	}
	return cards.Cards[idx], idx, len(cards.Cards), true
}
