package study

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

const catText = "The cat sat on the mat. It was happy."

func TestGenerateSummaryScenario(t *testing.T) {
	content, err := Generate(catText, ModeSummary)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	summary, ok := content.(Summary)
	if !ok {
		t.Fatalf("expected Summary, got %T", content)
	}
	if !strings.Contains(summary.Text, "The cat sat") {
		t.Fatalf("summary missing opening words: %q", summary.Text)
	}
	want := "This content discusses The cat sat and covers key concepts including the mat. It. The main takeaway focuses on the mat. It was happy.."
	if summary.Text != want {
		t.Fatalf("summary mismatch\nwant %q\ngot  %q", want, summary.Text)
	}
}

func TestGenerateKeyPointsShortInput(t *testing.T) {
	content, err := Generate("alpha beta gamma", ModeKeyPoints)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	points := content.(KeyPoints).Points
	want := []string{
		"Primary concept: alpha beta gamma",
		"Key methodology: alpha beta gamma",
		"Important detail: beta gamma",
		"Critical insight: gamma",
		"Final consideration: alpha beta gamma",
	}
	if !reflect.DeepEqual(points, want) {
		t.Fatalf("key points mismatch\nwant %#v\ngot  %#v", want, points)
	}
}

func TestGenerateKeyPointsWindows(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = string(rune('a' + i))
	}
	content, err := Generate(strings.Join(words, " "), ModeKeyPoints)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := []string{
		"Primary concept: a b c d e f g h",
		"Key methodology: f g h i j k",
		"Important detail: k l m n o p q",
		"Critical insight: p q r s t",
		"Final consideration: o p q r s t",
	}
	if got := content.(KeyPoints).Points; !reflect.DeepEqual(got, want) {
		t.Fatalf("key points mismatch\nwant %#v\ngot  %#v", want, got)
	}
}

func TestGenerateFlashcardsUsesSentencesAndFallbacks(t *testing.T) {
	content, err := Generate(catText, ModeFlashcards)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	cards := content.(Flashcards).Cards
	want := []Flashcard{
		{Question: `What is the main topic discussed in "The cat sat on..."?`, Answer: "The cat sat on the mat"},
		{Question: "Explain the significance of on", Answer: "It was happy"},
		{Question: "How does the relate to the overall topic?", Answer: fallbackRelationAnswer},
		{Question: "What are the key implications of It was happy.?", Answer: "It was happy"},
	}
	if !reflect.DeepEqual(cards, want) {
		t.Fatalf("flashcards mismatch\nwant %#v\ngot  %#v", want, cards)
	}
}

func TestGenerateFlashcardsTwoWords(t *testing.T) {
	content, err := Generate("hello world", ModeFlashcards)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	cards := content.(Flashcards).Cards
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}
	answers := []string{cards[0].Answer, cards[1].Answer, cards[2].Answer, cards[3].Answer}
	want := []string{"hello world", fallbackSignificanceAnswer, fallbackRelationAnswer, "hello world"}
	if !reflect.DeepEqual(answers, want) {
		t.Fatalf("answers mismatch: %#v", answers)
	}
	if cards[1].Question != "Explain the significance of hello" {
		t.Fatalf("unexpected second question: %q", cards[1].Question)
	}
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	if _, err := Generate("text", Mode(42)); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestGenerateSplitsOnAnyWhitespace(t *testing.T) {
	content, err := Generate("one\ttwo\nthree   four", ModeKeyPoints)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := content.(KeyPoints).Points[0]; got != "Primary concept: one two three four" {
		t.Fatalf("unexpected first point: %q", got)
	}
}

func TestWindowClamps(t *testing.T) {
	words := []string{"a", "b", "c"}
	cases := []struct {
		name  string
		start int
		n     int
		want  []string
	}{
		{name: "inside", start: 0, n: 2, want: []string{"a", "b"}},
		{name: "overrun", start: 1, n: 10, want: []string{"b", "c"}},
		{name: "past end", start: 3, n: 2, want: nil},
		{name: "negative start", start: -1, n: 1, want: []string{"a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := window(words, tc.start, tc.n); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("window(%d, %d) = %#v, want %#v", tc.start, tc.n, got, tc.want)
			}
		})
	}
	if got := tail(words, 5); !reflect.DeepEqual(got, words) {
		t.Fatalf("tail should return all words when short, got %#v", got)
	}
}

func TestSimulatorWaitsBeforeGenerating(t *testing.T) {
	var slept time.Duration
	sim := NewSimulator(1500 * time.Millisecond)
	sim.sleep = func(d time.Duration) { slept += d }

	content, err := sim.Generate(context.Background(), catText, ModeSummary)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if slept != 1500*time.Millisecond {
		t.Fatalf("expected simulator to sleep 1.5s, slept %s", slept)
	}
	if content.Mode() != ModeSummary {
		t.Fatalf("unexpected mode %v", content.Mode())
	}
}

func TestSimulatorIgnoresCancellation(t *testing.T) {
	sim := NewSimulator(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sim.Generate(ctx, catText, ModeFlashcards); err != nil {
		t.Fatalf("cancelled context should not abort generation: %v", err)
	}
}

func TestNewSimulatorClampsNegativeDelay(t *testing.T) {
	if sim := NewSimulator(-time.Second); sim.Delay != 0 {
		t.Fatalf("expected zero delay, got %s", sim.Delay)
	}
}
