package chat

import "github.com/charmbracelet/lipgloss"

var (
	dimColor     = lipgloss.Color("7")
	accentColor  = lipgloss.Color("12")
	successColor = lipgloss.Color("10")
	dangerColor  = lipgloss.Color("9")

	// Input prompt style
	PromptStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// "LLM:" reply label style
	LabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// Per-turn error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// Startup banner style
	BannerStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
