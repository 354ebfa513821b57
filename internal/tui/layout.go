package tui

// pageChrome counts the fixed rows around the textarea and viewport: hero,
// mode cards, panel headers, character counter, status line, session meter
// and the blank separators between them.
const pageChrome = 17

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputHeight    int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 12,
		inputHeight:    6,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth

	usable := height - pageChrome
	l.inputHeight = clamp(usable/3, 3, 10)
	l.viewportHeight = usable - l.inputHeight
	if l.viewportHeight < 5 {
		l.viewportHeight = 5
	}
}

func (m *model) applyLayout() {
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.input.SetWidth(m.layout.viewportWidth)
	m.input.SetHeight(m.layout.inputHeight)
	m.pathInput.Width = m.layout.viewportWidth - 4
	m.markViewportDirty()
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
