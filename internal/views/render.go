package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"hufschlaeger.net/tasksync/internal/storage"
	"hufschlaeger.net/tasksync/pkg/utils"
)

const maxContentWidth = 72

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderOpenTasks formatiert die offene Task-Liste für das Terminal.
func RenderOpenTasks(tasks []storage.Task) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Open Tasks"))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(dimStyle.Render("  (keine offenen Tasks)"))
		b.WriteString("\n")
		return b.String()
	}

	for _, task := range tasks {
		b.WriteString("  • ")
		b.WriteString(utils.TruncateText(task.Content, maxContentWidth))
		if task.Due != nil && *task.Due != "" {
			b.WriteString(" ")
			b.WriteString(dueStyle.Render("(due " + *task.Due + ")"))
		}
		b.WriteString(" ")
		b.WriteString(dimStyle.Render("[" + task.Source + "]"))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderSummary rendert die Markdown-Antwort des Modells für das Terminal.
func RenderSummary(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
