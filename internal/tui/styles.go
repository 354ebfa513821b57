package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#7f5af0")
	secondaryColor = lipgloss.Color("#2cb67d")
	inkColor       = lipgloss.Color("#0f0f0f")
	mutedColor     = lipgloss.Color("#56526e")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a1b2")).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	focusBadgeStyle    = lipgloss.NewStyle().Foreground(inkColor).Background(secondaryColor).Padding(0, 1).MarginLeft(1)

	modeCardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 1).MarginRight(1)
	selectedModeCardStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(accentColor).Padding(0, 1).MarginRight(1)
	modeLabelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	selectedModeLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	stepTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	contentTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Underline(true)
	summaryBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(1, 2)
	pointNumberStyle   = lipgloss.NewStyle().Bold(true).Foreground(secondaryColor)
	cardBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accentColor).Padding(1, 2)
	questionBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	answerBadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Background(secondaryColor).Padding(0, 1)
	staleHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd166")).Italic(true)

	statusBarStyle = lipgloss.NewStyle().Foreground(inkColor).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(1, 2)
)
