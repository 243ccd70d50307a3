package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hufschlaeger.net/tasksync/internal/storage"
	"hufschlaeger.net/tasksync/pkg/utils"
)

// ErrSummarize markiert Fehler der Zusammenfassung.
var ErrSummarize = errors.New("summarize failed")

// ChatClient liefert eine Modell-Antwort auf einen Prompt.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Summarizer schickt die offene Task-Liste an das Chat-Modell und gibt
// dessen Antwort unverändert zurück.
type Summarizer struct {
	client ChatClient
}

func NewSummarizer(client ChatClient) *Summarizer {
	return &Summarizer{client: client}
}

func (s *Summarizer) Summarize(ctx context.Context, tasks []storage.Task) (string, error) {
	prompt := buildPrompt(tasks)

	reply, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummarize, err)
	}

	return reply, nil
}

func buildPrompt(tasks []storage.Task) string {
	var lines []string
	for _, task := range tasks {
		lines = append(lines, utils.BulletLine(task.Content, task.Due))
	}

	return "Here is my current open task list:\n" +
		strings.Join(lines, "\n") +
		"\n\nPlease tell me what I need to focus on today. " +
		"Prioritise by urgency and importance, and keep it concise."
}
