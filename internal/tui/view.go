package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + cyan.Render("Numerical Differential Equation Solver") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + dim.Render(m.equation) + "\n\n")

	switch m.state {
	case stateParams:
		m.viewParams(&b)
	case stateOptions:
		m.viewParams(&b)
		m.viewOptions(&b)
	case stateMethod, stateDone:
		m.viewParams(&b)
		m.viewOptions(&b)
		m.viewMethods(&b)
	}

	if m.err != "" {
		b.WriteString("\n      " + red.Render(m.err) + "\n")
	}

	if !m.quitting {
		b.WriteString("\n" + dim.Render("      "+m.hint()) + "\n")
	}
	return b.String()
}

func (m Model) hint() string {
	switch m.state {
	case stateParams:
		return "↑↓ field   enter next   esc quit"
	case stateOptions:
		return "↑↓ select   y/n set   space toggle   enter continue   esc quit"
	case stateMethod:
		return "type 1-6   enter run   esc quit"
	}
	return ""
}

func (m Model) viewParams(b *strings.Builder) {
	for i, in := range m.inputs {
		label := fmt.Sprintf("%-18s", fieldLabels[i])
		if m.state == stateParams && i == m.focus {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + in.View() + "\n")
			continue
		}
		b.WriteString("        " + dim.Render(label) + magenta.Render(in.Value()) + "\n")
	}
}

func (m Model) viewOptions(b *strings.Builder) {
	b.WriteString("\n")
	for i, label := range optionLabels {
		mark := dim.Render("[ ]")
		if m.options[i] {
			mark = green.Render("[y]")
		}
		line := fmt.Sprintf("%s %s", mark, label)
		if m.state == stateOptions && i == m.optCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(line) + "\n")
			continue
		}
		b.WriteString("        " + dim.Render(line) + "\n")
	}
}

func (m Model) viewMethods(b *strings.Builder) {
	b.WriteString("\n      " + white.Render("Select numerical method:") + "\n")
	for i, label := range m.labels {
		b.WriteString(fmt.Sprintf("        %s %s\n", cyan.Render(fmt.Sprintf("%d.", i+1)), dim.Render(label)))
	}
	b.WriteString("\n      " + white.Render("Enter your choice (1-6): ") + m.choice.View() + "\n")
}
