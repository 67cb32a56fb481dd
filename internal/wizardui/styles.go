package wizardui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the wizard and the summary.
type Styles struct {
	Header   lipgloss.Style
	Progress lipgloss.Style
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Option   lipgloss.Style
	Alert    lipgloss.Style
	Help     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Box      lipgloss.Style
}

func DefaultStyles() Styles {
	accent := lipgloss.Color("42")
	faint := lipgloss.Color("245")

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Progress: lipgloss.NewStyle().Foreground(faint),
		Title:    lipgloss.NewStyle().Bold(true).MarginTop(1),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Option:   lipgloss.NewStyle().Foreground(faint).PaddingLeft(2),
		Alert:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Help:     lipgloss.NewStyle().Foreground(faint).MarginTop(1),
		Label:    lipgloss.NewStyle().Foreground(faint).Width(22),
		Value:    lipgloss.NewStyle().Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2),
	}
}
