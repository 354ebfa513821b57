package tui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/studyai/internal/session"
	"github.com/csheth/studyai/internal/study"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Generator study.Generator
	Mode      study.Mode
	Text      string
	Source    string
	Clipboard func(string) error
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Generator == nil {
		config.Generator = study.NewSimulator(study.DefaultDelay)
	}
	if config.Clipboard == nil {
		config.Clipboard = clipboard.WriteAll
	}
	if !config.Mode.Valid() {
		config.Mode = study.ModeSummary
	}

	input := textarea.New()
	input.Placeholder = inputPlaceholder
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetValue(config.Text)

	pathInput := textinput.New()
	pathInput.Placeholder = filePlaceholder
	pathInput.CharLimit = filePathLimit
	pathInput.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 12)
	vp.MouseWheelEnabled = true

	m := &model{
		config:        config,
		stage:         stageCompose,
		session:       session.New(config.Mode).SetText(config.Text),
		input:         input,
		pathInput:     pathInput,
		spinner:       spin,
		viewport:      vp,
		layout:        newPageLayout(),
		jobs:          newJobBus(),
		jobState:      map[jobKind]jobSnapshot{},
		sourceName:    config.Source,
		viewportDirty: true,
		infoMessage:   emptyStateText,
	}
	if m.session.HasInput() {
		m.focusOutputPanel()
		m.infoMessage = "Press p to process or 1-3 to pick a mode."
	} else {
		m.focusInputPanel()
	}
	m.applyLayout()
	return m
}

type model struct {
	config Config
	stage  stage
	focus  focusArea

	session session.State

	input     textarea.Model
	pathInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	layout    pageLayout

	jobs     *jobBus
	jobState map[jobKind]jobSnapshot

	sourceName    string
	viewportDirty bool
	infoMessage   string
	errorMessage  string
	helpVisible   bool
}

func (m *model) Init() tea.Cmd {
	if m.focus == focusInput {
		return textarea.Blink
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.session.Processing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.markViewportDirty()
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.applyLayout()
		return m, nil
	case jobSignalMsg:
		m.recordJob(msg.Snapshot)
		return m, nil
	case jobResultEnvelope:
		m.recordJob(msg.Snapshot)
		if msg.Payload == nil {
			return m, m.handleAbandonedJob(msg.Snapshot)
		}
		return m.Update(msg.Payload)
	case generationResultMsg:
		return m, m.handleGenerationResult(msg)
	case fileLoadResultMsg:
		m.handleFileLoaded(msg)
		return m, nil
	case clipboardResultMsg:
		m.handleClipboardResult(msg)
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.stage == stageFilePrompt {
		return m.handleFilePromptKey(key)
	}
	switch key.Type {
	case tea.KeyCtrlP:
		return m, m.processCmd()
	case tea.KeyCtrlO:
		return m, m.openFilePrompt()
	}
	if m.focus == focusInput {
		return m.handleInputKey(key)
	}
	return m.handleOutputKey(key)
}

func (m *model) handleInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc, tea.KeyTab:
		m.focusOutputPanel()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if value := m.input.Value(); value != m.session.Text {
		m.session = m.session.SetText(value)
		m.markViewportDirty()
	}
	return m, cmd
}

func (m *model) handleOutputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab", "i":
		m.focusInputPanel()
		return m, textarea.Blink
	case "1", "2", "3":
		modes := study.Modes()
		m.selectMode(modes[int(key.Runes[0]-'1')])
		return m, nil
	case "m":
		m.selectMode(m.session.Mode.Next())
		return m, nil
	case "p", "enter":
		return m, m.processCmd()
	case "n", "right", "l":
		m.session = m.session.NextFlashcard()
		m.markViewportDirty()
		return m, nil
	case "b", "left", "h":
		m.session = m.session.PrevFlashcard()
		m.markViewportDirty()
		return m, nil
	case " ":
		m.session = m.session.ToggleAnswer()
		m.markViewportDirty()
		return m, nil
	case "y":
		return m, m.copyCmd()
	case "o":
		return m, m.openFilePrompt()
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return m, cmd
}

func (m *model) handleFilePromptKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.closeFilePrompt()
		m.infoMessage = "File load canceled."
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		m.closeFilePrompt()
		if path == "" {
			m.infoMessage = "No file selected."
			return m, nil
		}
		m.infoMessage = fmt.Sprintf("Reading %s…", path)
		return m, m.jobs.Start(jobKindLoad, loadFileJob(expandPath(path)))
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(key)
	return m, cmd
}

func (m *model) focusInputPanel() {
	m.focus = focusInput
	m.input.Focus()
}

func (m *model) focusOutputPanel() {
	m.focus = focusOutput
	m.input.Blur()
}

func (m *model) selectMode(mode study.Mode) {
	m.session = m.session.SetMode(mode)
	m.infoMessage = fmt.Sprintf("%s mode selected.", mode.Label())
	m.markViewportDirty()
}

func (m *model) processCmd() tea.Cmd {
	next, req, ok := m.session.BeginProcess()
	if !ok {
		if m.session.Processing {
			m.infoMessage = "Already processing, hang tight."
		} else {
			m.infoMessage = "Enter some text before processing."
		}
		return nil
	}
	m.session = next
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Processing as %s…", req.Mode.Label())
	m.viewport.GotoTop()
	m.markViewportDirty()
	return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindGenerate, generateJob(m.config.Generator, req)))
}

func (m *model) handleGenerationResult(msg generationResultMsg) tea.Cmd {
	if !m.session.Processing {
		return nil
	}
	m.session = m.session.CompleteProcess(msg.content, msg.err)
	m.viewport.GotoTop()
	m.markViewportDirty()
	if msg.err != nil || msg.content == nil {
		if msg.err == nil {
			msg.err = errors.New("generator returned no content")
		}
		log.Printf("[process] %s generation failed: %v", msg.mode, msg.err)
		m.infoMessage = emptyStateText
		return nil
	}
	m.infoMessage = fmt.Sprintf("%s ready.", msg.content.Mode().Label())
	if msg.content.Mode() == study.ModeFlashcards {
		m.infoMessage += " Space flips the card, ←/→ browse."
	}
	m.focusOutputPanel()
	return nil
}

// handleAbandonedJob settles state for a job whose runner panicked before
// producing a payload.
func (m *model) handleAbandonedJob(snapshot jobSnapshot) tea.Cmd {
	switch snapshot.Kind {
	case jobKindGenerate:
		return m.handleGenerationResult(generationResultMsg{
			mode: m.session.Mode,
			err:  errors.New(snapshot.Err),
		})
	case jobKindLoad:
		log.Printf("[load] aborted: %s", snapshot.Err)
	}
	return nil
}

func (m *model) openFilePrompt() tea.Cmd {
	m.stage = stageFilePrompt
	m.input.Blur()
	m.pathInput.SetValue("")
	m.pathInput.Focus()
	m.infoMessage = "Enter the path of a .txt file. Esc cancels."
	return textinput.Blink
}

func (m *model) closeFilePrompt() {
	m.stage = stageCompose
	m.pathInput.Blur()
	m.pathInput.SetValue("")
	if m.focus == focusInput {
		m.input.Focus()
	}
}

func (m *model) handleFileLoaded(msg fileLoadResultMsg) {
	if msg.err != nil {
		log.Printf("[load] %s: %v", msg.path, msg.err)
		return
	}
	next, ok := m.session.LoadFromFile(msg.path, msg.data)
	if !ok {
		log.Printf("[load] ignored %s: not a plain-text file", msg.path)
		return
	}
	m.session = next
	m.input.SetValue(next.Text)
	m.sourceName = filepath.Base(msg.path)
	m.infoMessage = fmt.Sprintf("Loaded %s (%d characters).", m.sourceName, charCount(next.Text))
	m.markViewportDirty()
}

func (m *model) copyCmd() tea.Cmd {
	text := ""
	if m.session.Content != nil {
		text = study.Plain(m.session.Content)
	}
	if text == "" {
		m.infoMessage = "Nothing to copy yet."
		return nil
	}
	return m.jobs.Start(jobKindCopy, copyJob(m.config.Clipboard, text))
}

func (m *model) handleClipboardResult(msg clipboardResultMsg) {
	if msg.err != nil {
		m.errorMessage = fmt.Sprintf("Clipboard unavailable: %v", msg.err)
		return
	}
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Copied %d characters to the clipboard.", msg.chars)
}

func (m *model) recordJob(snapshot jobSnapshot) {
	m.jobState[snapshot.Kind] = snapshot
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if m.viewportDirty {
		m.refreshViewport()
	}
}

func (m *model) refreshViewport() {
	m.viewportDirty = false
	prevYOffset := m.viewport.YOffset
	m.viewport.SetContent(m.buildOutputContent())
	m.viewport.SetYOffset(prevYOffset)
}
