package service

import (
	"context"
	"fmt"

	"hufschlaeger.net/tasksync/internal/config"
	gitlabRepo "hufschlaeger.net/tasksync/internal/repository/gitlab"
	todoistRepo "hufschlaeger.net/tasksync/internal/repository/todoist"
	"hufschlaeger.net/tasksync/internal/storage"
)

// Source liefert den aktuellen Remote-Stand als Store-Tasks.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]storage.Task, error)
}

// SyncStats fasst das Ergebnis eines Sync-Laufs zusammen.
type SyncStats struct {
	Fetched int // vom Remote übernommene Records
	Total   int // Records im Store nach dem Merge
}

// Syncer führt den Remote-Stand einer Quelle in den Store.
// Records, die absent vom Remote sind, bleiben erhalten; der Sync löscht nie.
type Syncer struct {
	store *storage.Store
}

func NewSyncer(store *storage.Store) *Syncer {
	return &Syncer{store: store}
}

func (s *Syncer) Sync(ctx context.Context, source Source) (SyncStats, error) {
	stats := SyncStats{}

	fmt.Printf("🔍 Lade Tasks von %s...\n", source.Name())

	tasks, err := source.Fetch(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetch from %s failed: %w", source.Name(), err)
	}
	stats.Fetched = len(tasks)

	if err := s.store.Merge(ctx, tasks); err != nil {
		return stats, fmt.Errorf("merge from %s failed: %w", source.Name(), err)
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return stats, err
	}
	stats.Total = total

	return stats, nil
}

// TodoistSource holt aktive Tasks von Todoist und mappt sie für den Store.
type TodoistSource struct {
	repo   *todoistRepo.Repository
	mapper *Mapper
}

func NewTodoistSource(cfg *config.Config) *TodoistSource {
	return &TodoistSource{
		repo:   todoistRepo.NewRepository(cfg),
		mapper: NewMapper(cfg),
	}
}

func (s *TodoistSource) Name() string { return "todoist" }

func (s *TodoistSource) Fetch(ctx context.Context) ([]storage.Task, error) {
	remote, err := s.repo.GetActiveTasks(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]storage.Task, 0, len(remote))
	for _, rt := range remote {
		task, err := s.mapper.TodoistToTask(rt)
		if err != nil {
			fmt.Printf("⚠️  Record übersprungen: %v\n", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GitLabSource holt Issues des konfigurierten Projekts von GitLab.
type GitLabSource struct {
	repo   *gitlabRepo.Repository
	mapper *Mapper
}

func NewGitLabSource(cfg *config.Config) *GitLabSource {
	return &GitLabSource{
		repo:   gitlabRepo.NewRepository(cfg),
		mapper: NewMapper(cfg),
	}
}

func (s *GitLabSource) Name() string { return "gitlab" }

func (s *GitLabSource) Fetch(ctx context.Context) ([]storage.Task, error) {
	issues, err := s.repo.GetProjectIssues(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]storage.Task, 0, len(issues))
	for _, issue := range issues {
		task, err := s.mapper.GitLabToTask(issue)
		if err != nil {
			fmt.Printf("⚠️  Record übersprungen: %v\n", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
