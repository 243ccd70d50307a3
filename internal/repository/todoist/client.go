package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"hufschlaeger.net/tasksync/internal/config"
	todoistDomain "hufschlaeger.net/tasksync/internal/domain/todoist"
)

// ErrFetch markiert Fehler beim Abruf der Todoist API.
var ErrFetch = errors.New("todoist fetch failed")

type Repository struct {
	config     *config.Config
	httpClient *http.Client
	baseURL    string
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		config:     cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.GetTodoistBaseURL(),
	}
}

// GetActiveTasks holt alle aktiven Tasks des Accounts
func (r *Repository) GetActiveTasks(ctx context.Context) ([]todoistDomain.Task, error) {
	url := fmt.Sprintf("%s/tasks", r.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	req.Header.Set("Authorization", "Bearer "+r.config.TodoistToken)

	q := req.URL.Query()
	q.Add("filter", "active")
	req.URL.RawQuery = q.Encode()

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("⚠️  Fehler beim Schliessen des Response Bodies: %v\n", cerr)
		}
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: invalid Todoist token", ErrFetch)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: get tasks failed %d: %s", ErrFetch, resp.StatusCode, string(body))
	}

	var tasks []todoistDomain.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrFetch, err)
	}
	return tasks, nil
}

// ValidateConnection prüft ob die Todoist-Verbindung funktioniert
func (r *Repository) ValidateConnection(ctx context.Context) error {
	_, err := r.GetActiveTasks(ctx)
	if err != nil {
		return fmt.Errorf("todoist connection failed: %w", err)
	}
	return nil
}
