package tui

type stage int

const (
	stageCompose stage = iota
	stageFilePrompt
)

type focusArea int

const (
	focusInput focusArea = iota
	focusOutput
)

const (
	heroTitle   = "StudyAI Companion"
	heroTagline = "AI-powered learning assistant"
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	filePathLimit             = 512
	meterNameLimit            = 28
)

const (
	inputPlaceholder = "Paste your notes, textbook content, or study material here..."
	filePlaceholder  = "Path to a .txt file…"
	emptyStateText   = "Enter your content and press ctrl+p to get started."
	processingText   = "AI is processing your content..."
)
