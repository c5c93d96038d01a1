package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderField renders one "label │ [input]" form row with the label padded
// to width.
func renderField(b *strings.Builder, label string, width int, input string) {
	b.WriteString(label)
	if pad := width - len([]rune(label)); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(" │ [")
	b.WriteString(input)
	b.WriteString("]\n")
}

func renderFormFooter(b *strings.Builder, action string, submitting bool, errMsg string) {
	if submitting {
		b.WriteString("\n")
		b.WriteString(busyStyle.Render("[" + action + "...]"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
