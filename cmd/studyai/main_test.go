package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/csheth/studyai/internal/config"
	"github.com/csheth/studyai/internal/session"
	"github.com/csheth/studyai/internal/study"
)

// isolate points config lookups at an empty temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("STUDYAI_CONFIG", "")
	t.Setenv("STUDYAI_MODE", "")
	t.Setenv("STUDYAI_DELAY_MS", "")
	t.Setenv("STUDYAI_LOG", "")
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestPrintSummaryFromFile(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "", "-print", "-delay", "0", "-file", filepath.Join("testdata", "notes.txt"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "This content discusses Photosynthesis converts light") {
		t.Fatalf("unexpected summary %q", out)
	}
}

func TestPrintKeyPointsFromStdin(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "one two three", "-print", "-delay", "0", "-mode", "keypoints", "-file", "-")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 key points, got %d: %q", len(lines), out)
	}
	if lines[0] != "1. Primary concept: one two three" {
		t.Fatalf("unexpected first point %q", lines[0])
	}
}

func TestPrintFlashcardsJSON(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "", "-print", "-delay", "0", "-mode", "flashcards", "-format", "json", "-file", filepath.Join("testdata", "notes.txt"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var doc study.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if doc.Mode != study.ModeFlashcards || len(doc.Flashcards) != 4 {
		t.Fatalf("unexpected document %+v", doc)
	}
	if doc.Flashcards[0].Answer != "Photosynthesis converts light energy into chemical energy stored in glucose" {
		t.Fatalf("unexpected first answer %q", doc.Flashcards[0].Answer)
	}
}

func TestPrintWithoutInput(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "", "-print", "-delay", "0")
	if !errors.Is(err, errNoText) {
		t.Fatalf("expected errNoText, got %v", err)
	}
}

func TestPrintIgnoresNonTextFile(t *testing.T) {
	isolate(t)
	_, stderr, err := runCLI(t, "", "-print", "-delay", "0", "-file", filepath.Join("testdata", "slides.pdf"))
	if !errors.Is(err, errNoText) {
		t.Fatalf("expected errNoText, got %v", err)
	}
	if !strings.Contains(stderr, "[load] ignored") {
		t.Fatalf("expected load log, got %q", stderr)
	}
}

func TestRejectsBadFlags(t *testing.T) {
	isolate(t)
	if _, _, err := runCLI(t, "", "-print", "-format", "xml"); err == nil {
		t.Fatal("expected format error")
	}
	if _, _, err := runCLI(t, "", "-print", "-mode", "essay"); !errors.Is(err, study.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if _, _, err := runCLI(t, "", "-print", "-delay", "-5"); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if _, _, err := runCLI(t, "", "-print", "stray"); err == nil {
		t.Fatal("expected positional argument error")
	}
}

func TestTUIConfigSharesControllerGenerator(t *testing.T) {
	gen := study.NewSimulator(0)
	ctrl := session.NewController(gen, session.WithMode(study.ModeFlashcards))
	if _, err := loadInput(ctrl, filepath.Join("testdata", "notes.txt"), strings.NewReader("")); err != nil {
		t.Fatalf("load input: %v", err)
	}
	cfg := tuiConfig(ctrl, "notes.txt")
	if cfg.Generator != study.Generator(gen) {
		t.Fatalf("expected the controller's simulator, got %T", cfg.Generator)
	}
	if cfg.Mode != study.ModeFlashcards || !strings.HasPrefix(cfg.Text, "Photosynthesis") || cfg.Source != "notes.txt" {
		t.Fatalf("unexpected tui config %+v", cfg)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYAI_MODE", "flashcards")
	t.Setenv("STUDYAI_DELAY_MS", "250")

	opts, err := parseFlags([]string{"-mode", "key-points", "-no-alt-screen"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Mode() != study.ModeKeyPoints {
		t.Fatalf("flag should win over env, got %s", cfg.DefaultMode)
	}
	if cfg.DelayMS != 250 {
		t.Fatalf("env delay should apply, got %d", cfg.DelayMS)
	}
	if cfg.UseAltScreen() {
		t.Fatal("-no-alt-screen should disable the alternate screen")
	}
}

func TestResolveConfigExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "default_mode: flashcards\ndelay_ms: 10\n")
	opts, err := parseFlags([]string{"-config", path}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Mode() != study.ModeFlashcards || cfg.DelayMS != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
