package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hufschlaeger.net/tasksync/internal/config"
	domain "hufschlaeger.net/tasksync/internal/domain/todoist"
)

func newRepoWithServer(t *testing.T, handler http.HandlerFunc) (*Repository, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	cfg := &config.Config{TodoistToken: "todo-token"}

	repo := NewRepository(cfg)
	// Redirect baseURL to our test server (field is package-private, and we're in package todoist)
	repo.baseURL = srv.URL

	return repo, srv
}

func TestGetActiveTasks(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks" || r.Method != http.MethodGet {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); !strings.HasPrefix(got, "Bearer todo-token") {
			t.Fatalf("missing/invalid Authorization header: %q", got)
		}
		if got := r.URL.Query().Get("filter"); got != "active" {
			t.Fatalf("expected filter=active, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]domain.Task{
			{ID: "100", Content: "Buy milk", Due: &domain.Due{Date: "2024-01-05"}},
			{ID: "101", Content: "Write report"},
		})
	})
	defer srv.Close()

	tasks, err := repo.GetActiveTasks(context.Background())
	if err != nil {
		t.Fatalf("GetActiveTasks() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "100" || tasks[0].Due == nil || tasks[0].Due.Date != "2024-01-05" {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	if tasks[1].Due != nil {
		t.Errorf("expected nil due, got %+v", tasks[1].Due)
	}
}

func TestGetActiveTasks_Unauthorized(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	_, err := repo.GetActiveTasks(context.Background())
	if err == nil || !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid Todoist token") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGetActiveTasks_ServerError(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})
	defer srv.Close()

	_, err := repo.GetActiveTasks(context.Background())
	if err == nil || !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status code in error, got %v", err)
	}
}

func TestGetActiveTasks_MalformedResponse(t *testing.T) {
	repo, srv := newRepoWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	defer srv.Close()

	_, err := repo.GetActiveTasks(context.Background())
	if err == nil || !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch for malformed body, got %v", err)
	}
}
