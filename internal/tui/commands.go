package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/studyai/internal/session"
	"github.com/csheth/studyai/internal/study"
)

type generationResultMsg struct {
	mode    study.Mode
	content study.Content
	err     error
}

type fileLoadResultMsg struct {
	path string
	data []byte
	err  error
}

type clipboardResultMsg struct {
	chars int
	err   error
}

func generateJob(generator study.Generator, req session.Request) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		content, err := generator.Generate(ctx, req.Text, req.Mode)
		return generationResultMsg{mode: req.Mode, content: content, err: err}, err
	}
}

func loadFileJob(path string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		data, err := os.ReadFile(path)
		return fileLoadResultMsg{path: path, data: data, err: err}, err
	}
}

func copyJob(write func(string) error, text string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		err := write(text)
		return clipboardResultMsg{chars: utf8.RuneCountInString(text), err: err}, err
	}
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func charCount(text string) int {
	return utf8.RuneCountInString(text)
}
