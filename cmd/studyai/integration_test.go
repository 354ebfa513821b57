package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/studyai/internal/tuitest"
)

func TestStudyAIFlashcardSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PTY session in short mode")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	fixture := filepath.Join(cmdDir, "testdata", "notes.txt")
	binary := buildBinary(t, cmdDir)
	configHome := t.TempDir()

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-delay", "0", "-file", fixture},
		Dir:     cmdDir,
		Env:     []string{"XDG_CONFIG_HOME=" + configHome, "STUDYAI_CONFIG=", "STUDYAI_MODE=", "STUDYAI_DELAY_MS="},
		Width:   100,
		Height:  48,
		Steps: []tuitest.Step{
			{WaitFor: "Choose Processing Mode"},
			{Input: []byte("3")},
			{WaitFor: "Flashcards mode selected", Input: []byte("p")},
			{WaitFor: "1 of 4", Input: tuitest.KeyRight},
			{WaitFor: "2 of 4", Input: tuitest.KeySpace},
			{WaitFor: "It takes place in the chloroplasts", Input: []byte("q")},
		},
		Timeout: 20 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if _, ok := rec.FinalFrame(); !ok {
		t.Fatal("no frames captured")
	}
	if !rec.Contains("Flashcards ready") {
		t.Fatal("expected flashcards ready status")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "studyai-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	cmd.Env = os.Environ()
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
