package utils

import "testing"

func stringPtr(s string) *string { return &s }

func TestChecklistLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		due     *string
		want    string
	}{
		{"with due date", "Pay rent", stringPtr("2024-01-01"), "- [ ] Pay rent (due 2024-01-01)"},
		{"without due date", "Write report", nil, "- [ ] Write report"},
		{"empty due pointer", "Buy milk", stringPtr(""), "- [ ] Buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChecklistLine(tt.content, tt.due); got != tt.want {
				t.Errorf("ChecklistLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBulletLine(t *testing.T) {
	if got := BulletLine("Pay rent", stringPtr("2024-01-01")); got != "- Pay rent (due 2024-01-01)" {
		t.Errorf("BulletLine() = %q", got)
	}
	if got := BulletLine("Write report", nil); got != "- Write report" {
		t.Errorf("BulletLine() = %q", got)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"shorter than limit", "short", 10, "short"},
		{"exactly at limit", "12345", 5, "12345"},
		{"truncated with ellipsis", "this is a longer text", 10, "this is..."},
		{"tiny limit", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.input, tt.maxLength); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.want)
			}
		})
	}
}
