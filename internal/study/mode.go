package study

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how input text is turned into study material.
type Mode int

const (
	ModeSummary Mode = iota
	ModeKeyPoints
	ModeFlashcards
)

// ErrUnknownMode is returned for mode identifiers or values outside the enum.
var ErrUnknownMode = errors.New("unknown processing mode")

var modeOrder = []Mode{ModeSummary, ModeKeyPoints, ModeFlashcards}

// Modes lists every processing mode in display order.
func Modes() []Mode {
	return append([]Mode(nil), modeOrder...)
}

// String returns the stable identifier used in flags, config and JSON.
func (m Mode) String() string {
	switch m {
	case ModeSummary:
		return "summary"
	case ModeKeyPoints:
		return "keypoints"
	case ModeFlashcards:
		return "flashcards"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the human readable name.
func (m Mode) Label() string {
	switch m {
	case ModeSummary:
		return "Summary"
	case ModeKeyPoints:
		return "Key Points"
	case ModeFlashcards:
		return "Flashcards"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeSummary && m <= ModeFlashcards
}

// Next cycles to the following mode, wrapping after flashcards.
func (m Mode) Next() Mode {
	if !m.Valid() {
		return ModeSummary
	}
	return modeOrder[(int(m)+1)%len(modeOrder)]
}

// ParseMode maps an identifier such as "keypoints" to its Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "summary":
		return ModeSummary, nil
	case "keypoints", "key-points", "key_points":
		return ModeKeyPoints, nil
	case "flashcards", "flashcard":
		return ModeFlashcards, nil
	default:
		return ModeSummary, fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// MarshalText lets modes round-trip through JSON and YAML as identifiers.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
