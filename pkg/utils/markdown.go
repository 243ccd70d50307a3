package utils

import "fmt"

// ChecklistLine formatiert einen Task als Markdown-Checkbox-Zeile
func ChecklistLine(content string, due *string) string {
	if due != nil && *due != "" {
		return fmt.Sprintf("- [ ] %s (due %s)", content, *due)
	}
	return fmt.Sprintf("- [ ] %s", content)
}

// BulletLine formatiert einen Task als einfache Markdown-Liste
func BulletLine(content string, due *string) string {
	if due != nil && *due != "" {
		return fmt.Sprintf("- %s (due %s)", content, *due)
	}
	return fmt.Sprintf("- %s", content)
}

// TruncateText kürzt Text auf maximale Länge
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	if maxLength <= 3 {
		return text[:maxLength]
	}

	return text[:maxLength-3] + "..."
}
