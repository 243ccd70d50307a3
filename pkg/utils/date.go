package utils

import (
	"fmt"
	"time"
)

// ISODate ist das Datumsformat des lokalen Stores (YYYY-MM-DD, ohne Uhrzeit).
const ISODate = "2006-01-02"

// NormalizeISODate konvertiert ein Remote-Datum zu YYYY-MM-DD
func NormalizeISODate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty date")
	}

	// Mögliche Remote-Formate
	formats := []string{
		ISODate,                         // Nur Datum
		"2006-01-02T15:04:05Z",          // ISO UTC
		"2006-01-02T15:04:05.000Z",      // ISO UTC mit Millisekunden
		"2006-01-02T15:04:05-07:00",     // ISO mit Timezone
		"2006-01-02T15:04:05.000-07:00", // ISO mit Millisekunden + Timezone
	}

	for _, format := range formats {
		if parsed, err := time.Parse(format, raw); err == nil {
			return parsed.Format(ISODate), nil
		}
	}

	return "", fmt.Errorf("unknown date format: %q", raw)
}

// Today liefert das heutige Datum als YYYY-MM-DD
func Today() string {
	return time.Now().Format(ISODate)
}
