package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorBackground = lipgloss.Color("#050F2E")
	colorSwitchOn   = lipgloss.Color("#167AF6")
	colorSwitchOff  = lipgloss.Color("#14244C")
	colorTrack      = lipgloss.Color("#104DA4")
	colorTrackRest  = lipgloss.Color("#0E2550")
	colorButton     = lipgloss.Color("#2966F2")
	colorLabel      = lipgloss.Color("#8A96B8")
	colorWhite      = lipgloss.Color("#FFFFFF")
	colorError      = lipgloss.Color("196")
)

var (
	screenStyle = lipgloss.NewStyle().
			Background(colorBackground).
			Foreground(colorWhite).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)

	passwordStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTrack).
			Padding(0, 2)

	placeholderStyle = passwordStyle.Foreground(colorLabel)

	focusedStyle = lipgloss.NewStyle().Foreground(colorSwitchOn).Bold(true)

	switchOnStyle  = lipgloss.NewStyle().Foreground(colorSwitchOn)
	switchOffStyle = lipgloss.NewStyle().Foreground(colorSwitchOff)

	trackFilledStyle = lipgloss.NewStyle().Foreground(colorTrack)
	trackRestStyle   = lipgloss.NewStyle().Foreground(colorTrackRest)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorSwitchOff).
			Padding(0, 4).
			MarginTop(1)

	activeButtonStyle = buttonStyle.Background(colorButton).Bold(true)

	toastStyle      = lipgloss.NewStyle().Foreground(colorWhite).Background(colorTrack).Padding(0, 2)
	toastErrorStyle = toastStyle.Background(colorError)
)
