package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/studyai/internal/guide"
	"github.com/csheth/studyai/internal/study"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()
	parts := []string{m.heroView(), m.modeSelectorView()}
	if m.stage == stageFilePrompt {
		parts = append(parts, m.filePromptView())
	} else {
		parts = append(parts, m.inputPanelView())
	}
	parts = append(parts, m.outputPanelView(), m.statusView(), m.sessionMeterView())
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		heroTitleStyle.Render(heroTitle),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) modeSelectorView() string {
	options := guide.Options()
	cardWidth := (m.layout.viewportWidth - 2*len(options)) / len(options)
	if cardWidth < 14 {
		cardWidth = 14
	}
	cards := make([]string, 0, len(options))
	for _, opt := range options {
		style := modeCardStyle
		label := modeLabelStyle.Render(fmt.Sprintf("[%s] %s", opt.Shortcut, opt.Label))
		if opt.Mode == m.session.Mode {
			style = selectedModeCardStyle
			label = selectedModeLabelStyle.Render(fmt.Sprintf("[%s] %s", opt.Shortcut, opt.Label))
		}
		desc := helperStyle.Render(truncate(opt.Description, cardWidth-2))
		cards = append(cards, style.Width(cardWidth).Render(label+"\n"+desc))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Choose Processing Mode"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	)
}

func (m *model) inputPanelView() string {
	header := sectionHeaderStyle.Render("Input Your Content")
	if m.focus == focusInput {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, focusBadgeStyle.Render("editing"))
	}
	counter := fmt.Sprintf("%d characters", charCount(m.session.Text))
	hint := "ctrl+p process • ctrl+o load .txt • esc browse output"
	if m.focus == focusOutput {
		hint = "i edit input • p process • o load .txt • ? keys"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.input.View(),
		helperStyle.Render(counter+"  •  "+hint),
	)
}

func (m *model) filePromptView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Load a Text File"),
		m.pathInput.View(),
		helperStyle.Render("Only .txt files are accepted. Enter to load, Esc to cancel."),
	)
}

func (m *model) outputPanelView() string {
	header := sectionHeaderStyle.Render("AI-Generated Content")
	if m.focus == focusOutput && m.stage == stageCompose {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, focusBadgeStyle.Render("browsing"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m *model) statusView() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.infoMessage != "" {
		return helperStyle.Render(m.infoMessage)
	}
	return ""
}

func (m *model) buildOutputContent() string {
	wrap := m.wrapWidth(2)
	if m.session.Processing {
		return fmt.Sprintf("%s %s", m.spinner.View(), processingText)
	}
	content := m.session.Content
	if content == nil {
		return m.emptyStateView(wrap)
	}
	var b strings.Builder
	if content.Mode() != m.session.Mode {
		hint := fmt.Sprintf("Showing %s generated earlier. Press p to process as %s.",
			content.Mode().Label(), m.session.Mode.Label())
		b.WriteString(staleHintStyle.Render(wordwrap.String(hint, wrap)))
		b.WriteString("\n\n")
	}
	switch c := content.(type) {
	case study.Summary:
		b.WriteString(m.summaryView(c, wrap))
	case study.KeyPoints:
		b.WriteString(m.keyPointsView(c, wrap))
	case study.Flashcards:
		b.WriteString(m.flashcardView(wrap))
	}
	return b.String()
}

func (m *model) emptyStateView(wrap int) string {
	steps := guide.Build(guide.Metadata{
		Mode:       m.session.Mode,
		Characters: charCount(m.session.Text),
	})
	lines := []string{helperStyle.Render(emptyStateText), ""}
	for idx, step := range steps {
		lines = append(lines, stepTitleStyle.Render(fmt.Sprintf("%d. %s", idx+1, step.Title)))
		lines = append(lines, indentMultiline(wordwrap.String(step.Description, wrap-3), "   "))
	}
	return strings.Join(lines, "\n")
}

func (m *model) summaryView(summary study.Summary, wrap int) string {
	body := wordwrap.String(summary.Text, wrap-6)
	return lipgloss.JoinVertical(lipgloss.Left,
		contentTitleStyle.Render("Summary"),
		summaryBoxStyle.Render(body),
	)
}

func (m *model) keyPointsView(points study.KeyPoints, wrap int) string {
	lines := []string{contentTitleStyle.Render("Key Points")}
	for idx, point := range points.Points {
		number := pointNumberStyle.Render(fmt.Sprintf("%d.", idx+1))
		text := indentMultiline(wordwrap.String(point, wrap-4), "   ")
		lines = append(lines, number+strings.TrimPrefix(text, "  "))
	}
	return strings.Join(lines, "\n")
}

func (m *model) flashcardView(wrap int) string {
	card, idx, count, ok := m.session.CurrentCard()
	if !ok {
		return helperStyle.Render("No flashcards were generated.")
	}
	side, text, toggle := "Question", card.Question, "space Show Answer"
	badge := questionBadgeStyle
	if m.session.AnswerVisible {
		side, text, toggle = "Answer", card.Answer, "space Show Question"
		badge = answerBadgeStyle
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		contentTitleStyle.Render("Flashcards"),
		helperStyle.Render(fmt.Sprintf("  %d of %d", idx+1, count)),
	)
	box := cardBoxStyle.Width(wrap - 2).Render(wordwrap.String(text, wrap-8))
	nav := helperStyle.Render("← b Previous   " + toggle + "   Next n →")
	return strings.Join([]string{header, badge.Render(side), box, nav}, "\n")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func (m *model) focusLabel() string {
	switch {
	case m.stage == stageFilePrompt:
		return "FILE"
	case m.focus == focusInput:
		return "INPUT"
	default:
		return "OUTPUT"
	}
}

func (m *model) sessionMeterView() string {
	stats := []string{
		fmt.Sprintf("Mode %s", m.session.Mode.Label()),
		fmt.Sprintf("Chars %d", charCount(m.session.Text)),
		fmt.Sprintf("Focus %s", m.focusLabel()),
	}
	if m.sourceName != "" {
		stats = append(stats, "File "+truncate(m.sourceName, meterNameLimit))
	}
	switch {
	case m.session.Processing:
		stats = append(stats, "Processing…")
	case m.session.Content != nil:
		stats = append(stats, m.session.Content.Mode().Label()+" ready")
	default:
		stats = append(stats, "Idle")
	}
	if jobBadges := m.jobStatusBadges(); len(jobBadges) > 0 {
		stats = append(stats, jobBadges...)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobStatusBadges() []string {
	var badges []string
	for _, kind := range jobKindOrder {
		snapshot, ok := m.jobState[kind]
		if !ok {
			continue
		}
		switch snapshot.Status {
		case jobStatusRunning:
			badges = append(badges, fmt.Sprintf("%s …", kind))
		case jobStatusSucceeded:
			badges = append(badges, fmt.Sprintf("%s ✓ %s", kind, snapshot.Duration.Round(durationPrecision)))
		case jobStatusFailed:
			badges = append(badges, fmt.Sprintf("%s ✗", kind))
		}
	}
	return badges
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"1/2/3", "Pick mode"},
		{"m", "Cycle mode"},
		{"p", "Process"},
		{"←/→", "Prev/next card"},
		{"space", "Flip card"},
		{"y", "Copy output"},
		{"o", "Load .txt file"},
		{"i", "Edit input"},
		{"↑/↓", "Scroll"},
		{"?", "Toggle cheatsheet"},
		{"q", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Navigation Cheatsheet")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + runewidth.FillRight(hint.Description, 18))
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	return runewidth.Truncate(text, limit, "…")
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
