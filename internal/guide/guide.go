package guide

import (
	"fmt"

	"github.com/csheth/studyai/internal/study"
)

// Option describes one selectable processing mode card.
type Option struct {
	Mode        study.Mode
	Label       string
	Description string
	Shortcut    string
}

// Options returns the mode cards in display order.
func Options() []Option {
	modes := study.Modes()
	options := make([]Option, 0, len(modes))
	for i, mode := range modes {
		options = append(options, Option{
			Mode:        mode,
			Label:       mode.Label(),
			Description: describe(mode),
			Shortcut:    fmt.Sprintf("%d", i+1),
		})
	}
	return options
}

func describe(mode study.Mode) string {
	switch mode {
	case study.ModeSummary:
		return "Get concise summaries"
	case study.ModeKeyPoints:
		return "Extract key points"
	case study.ModeFlashcards:
		return "Generate study cards"
	default:
		return ""
	}
}

// Step is one hint in the getting-started checklist.
type Step struct {
	Title       string
	Description string
}

// Metadata carries the session details used to personalise the steps.
type Metadata struct {
	Mode       study.Mode
	Characters int
}

// Build returns the checklist shown before any content has been generated.
func Build(meta Metadata) []Step {
	input := Step{
		Title:       "Add your material",
		Description: "Paste notes, textbook passages or study material into the input panel, or press ctrl+o to load a .txt file.",
	}
	if meta.Characters > 0 {
		input.Description = fmt.Sprintf("%d characters ready. Keep editing or press ctrl+o to load a .txt file instead.", meta.Characters)
	}
	return []Step{
		input,
		{
			Title:       "Choose a mode",
			Description: fmt.Sprintf("%s is selected. Press 1, 2 or 3 (or m to cycle) to switch between Summary, Key Points and Flashcards.", meta.Mode.Label()),
		},
		{
			Title:       "Process",
			Description: "Press ctrl+p or p to process. Flashcards can then be flipped with space and browsed with ← / →.",
		},
	}
}
