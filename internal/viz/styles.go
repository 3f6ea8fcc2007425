package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title     lipgloss.Style
	Header    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Subtle    lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style

	colorOn = true
)

func init() {
	applyTheme()
}

// SetColor enables or disables styled output. Plain mode keeps the exact
// text, which is what tests and pipes want.
func SetColor(on bool) {
	colorOn = on
	applyTheme()
}

func applyTheme() {
	if !colorOn {
		plain := lipgloss.NewStyle()
		Title, Header, Label, Value, Highlight, Subtle, Good, Bad =
			plain, plain, plain, plain, plain, plain, plain, plain
		return
	}

	t := CurrentTheme
	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
	Header = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	Label = lipgloss.NewStyle().Foreground(t.Muted)
	Value = lipgloss.NewStyle().Foreground(t.Secondary)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	Good = lipgloss.NewStyle().Foreground(t.Success)
	Bad = lipgloss.NewStyle().Foreground(t.Warning)
}
