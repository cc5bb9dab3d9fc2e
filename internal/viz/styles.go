package viz

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(10)
	valueStyle  = lipgloss.NewStyle()
	noticeStyle = lipgloss.NewStyle().Bold(true)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(panelWidth - 8)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  0-9, -   - Type a value             ║
║  Enter    - Insert / search value    ║
║  Tab      - Toggle insert / search   ║
║  I, S     - Insert / search mode     ║
║  Backspace- Delete last character    ║
║  Esc      - Clear input              ║
║  Space    - Pause / resume           ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
