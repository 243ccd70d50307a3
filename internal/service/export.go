package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hufschlaeger.net/tasksync/internal/config"
	"hufschlaeger.net/tasksync/internal/storage"
	"hufschlaeger.net/tasksync/pkg/utils"
)

// ErrExport markiert Fehler beim Schreiben der Checkliste.
var ErrExport = errors.New("export failed")

// Exporter schreibt offene Tasks als Markdown-Checkliste ins Vault.
type Exporter struct {
	config *config.Config
}

func NewExporter(cfg *config.Config) *Exporter {
	return &Exporter{config: cfg}
}

// Export schreibt die Checkliste und liefert den Pfad der Datei.
// Ohne expliziten Dateinamen wird "<heute> Open Tasks.md" verwendet.
func (e *Exporter) Export(tasks []storage.Task, filename string) (string, error) {
	if filename == "" {
		filename = e.generateFilename()
	}

	path := filepath.Join(e.config.VaultPath, filename)
	content := e.generateContent(tasks)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}

	return path, nil
}

func (e *Exporter) generateFilename() string {
	return fmt.Sprintf("%s Open Tasks.md", utils.Today())
}

func (e *Exporter) generateContent(tasks []storage.Task) string {
	var content strings.Builder

	content.WriteString("## Open Tasks\n")
	for _, task := range tasks {
		content.WriteString(utils.ChecklistLine(task.Content, task.Due))
		content.WriteString("\n")
	}

	return content.String()
}
