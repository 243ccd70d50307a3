package service

import (
	"fmt"

	"hufschlaeger.net/tasksync/internal/config"
	gitlabDomain "hufschlaeger.net/tasksync/internal/domain/gitlab"
	todoistDomain "hufschlaeger.net/tasksync/internal/domain/todoist"
	"hufschlaeger.net/tasksync/internal/storage"
	"hufschlaeger.net/tasksync/pkg/utils"
)

// Mapper konvertiert Wire-Modelle der Remote-Quellen in Store-Tasks und
// validiert an der Grenze: Records ohne ID oder Content und Records mit
// unbrauchbarem Datum werden abgelehnt statt implizit übernommen.
type Mapper struct {
	config *config.Config
}

func NewMapper(cfg *config.Config) *Mapper {
	return &Mapper{config: cfg}
}

// TodoistToTask konvertiert einen Todoist Task zu einem Store-Task
func (m *Mapper) TodoistToTask(t todoistDomain.Task) (storage.Task, error) {
	if t.ID == "" {
		return storage.Task{}, fmt.Errorf("todoist task without id")
	}
	if t.Content == "" {
		return storage.Task{}, fmt.Errorf("todoist task %s without content", t.ID)
	}

	var due *string
	if t.Due != nil && t.Due.Date != "" {
		normalized, err := utils.NormalizeISODate(t.Due.Date)
		if err != nil {
			return storage.Task{}, fmt.Errorf("todoist task %s: %w", t.ID, err)
		}
		due = &normalized
	}

	return storage.Task{
		ExternalID: t.ID,
		Content:    t.Content,
		Due:        due,
		Completed:  t.Completed,
		Source:     "todoist",
	}, nil
}

// GitLabToTask konvertiert ein GitLab Issue zu einem Store-Task.
// Die ExternalID wird mit dem Projektpfad präfixiert, damit sich
// Issue-IIDs verschiedener Quellen im Store nicht überschneiden.
func (m *Mapper) GitLabToTask(issue gitlabDomain.Issue) (storage.Task, error) {
	if issue.IID == "" {
		return storage.Task{}, fmt.Errorf("gitlab issue without iid")
	}
	if issue.Title == "" {
		return storage.Task{}, fmt.Errorf("gitlab issue %s without title", issue.IID)
	}

	var due *string
	if issue.DueDate != nil && *issue.DueDate != "" {
		normalized, err := utils.NormalizeISODate(*issue.DueDate)
		if err != nil {
			return storage.Task{}, fmt.Errorf("gitlab issue %s: %w", issue.IID, err)
		}
		due = &normalized
	}

	return storage.Task{
		ExternalID: fmt.Sprintf("%s#%s", m.config.GitLabProject, issue.IID),
		Content:    issue.Title,
		Due:        due,
		Completed:  issue.State == "closed",
		Source:     "gitlab",
	}, nil
}
