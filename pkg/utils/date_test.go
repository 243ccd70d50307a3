package utils

import "testing"

func TestNormalizeISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain date", "2024-01-05", "2024-01-05", false},
		{"iso utc", "2024-01-05T10:30:00Z", "2024-01-05", false},
		{"iso with millis", "2024-01-05T10:30:00.000Z", "2024-01-05", false},
		{"iso with timezone", "2024-01-05T10:30:00+02:00", "2024-01-05", false},
		{"empty", "", "", true},
		{"garbage", "next tuesday", "", true},
		{"german format", "05.01.2024", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeISODate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeISODate(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeISODate(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeISODate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	got := Today()
	if len(got) != 10 || got[4] != '-' || got[7] != '-' {
		t.Errorf("Today() = %q, expected YYYY-MM-DD format", got)
	}
}
