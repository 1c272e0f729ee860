package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passgen-go/internal/generator"
)

const placeholder = "Password"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generate Password"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("GENERATED PASSWORD"))
	b.WriteString("\n")
	if m.password == "" {
		b.WriteString(placeholderStyle.Render(placeholder))
	} else {
		b.WriteString(passwordStyle.Render(m.password))
	}
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldLength, fmt.Sprintf("LENGTH: %d", m.opts.Length)))
	b.WriteString("\n")
	b.WriteString(m.slider())
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("SETTINGS"))
	b.WriteString("\n")
	b.WriteString(m.toggle(fieldDigits, "Include numbers", m.opts.Digits))
	b.WriteString(m.toggle(fieldUppercase, "Include uppercase", m.opts.Uppercase))
	b.WriteString(m.toggle(fieldSymbols, "Include symbols", m.opts.Symbols))

	button := buttonStyle
	if m.focus == fieldGenerate {
		button = activeButtonStyle
	}
	b.WriteString(button.Render("GENERATE PASSWORD"))
	b.WriteString("\n\n")

	if n, ok := m.Toast(); ok {
		style := toastStyle
		if !n.OK() {
			style = toastErrorStyle
		}
		b.WriteString(style.Render(n.String()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))

	return screenStyle.Render(b.String())
}

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return focusedStyle.Render("> " + text)
	}
	return sectionStyle.Render("  " + text)
}

func (m Model) slider() string {
	const width = generator.MaxLength - generator.MinLength
	pos := m.opts.Length - generator.MinLength

	track := lipgloss.JoinHorizontal(lipgloss.Top,
		trackFilledStyle.Render(strings.Repeat("━", pos)),
		"●",
		trackRestStyle.Render(strings.Repeat("─", width-pos)),
	)
	return fmt.Sprintf("  %d %s %d", generator.MinLength, track, generator.MaxLength)
}

func (m Model) toggle(f field, text string, on bool) string {
	state := switchOffStyle.Render("○ off")
	if on {
		state = switchOnStyle.Render("● on ")
	}

	name := fmt.Sprintf("  %-20s", text)
	if m.focus == f {
		name = focusedStyle.Render(fmt.Sprintf("> %-20s", text))
	}
	return name + " " + state + "\n"
}
