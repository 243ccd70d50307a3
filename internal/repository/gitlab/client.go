package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hasura/go-graphql-client"

	"hufschlaeger.net/tasksync/internal/config"
	gitlabDomain "hufschlaeger.net/tasksync/internal/domain/gitlab"
)

// ErrFetch markiert Fehler beim Abruf der GitLab API.
var ErrFetch = errors.New("gitlab fetch failed")

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

type Repository struct {
	client *graphql.Client
	config *config.Config
}

func NewRepository(cfg *config.Config) *Repository {
	httpClient := &http.Client{
		Transport: &authTransport{
			token: cfg.GitLabToken,
			base:  http.DefaultTransport,
		},
	}

	client := graphql.NewClient(cfg.GetGitLabBaseURL()+"/api/graphql", httpClient)

	return &Repository{
		client: client,
		config: cfg,
	}
}

// newRepositoryWithEndpoint wird von Tests verwendet um den Endpoint umzubiegen.
func newRepositoryWithEndpoint(cfg *config.Config, endpoint string) *Repository {
	return &Repository{
		client: graphql.NewClient(endpoint, http.DefaultClient),
		config: cfg,
	}
}

// GetProjectIssues holt alle Issues des Projekts, Cursor-paginiert
func (r *Repository) GetProjectIssues(ctx context.Context) ([]gitlabDomain.Issue, error) {
	var allIssues []gitlabDomain.Issue
	var after *string
	first := 100

	for {
		var query gitlabDomain.ProjectIssuesQuery
		variables := map[string]interface{}{
			"projectPath": graphql.ID(r.config.GitLabProject),
			"first":       graphql.Int(first),
			"after":       (*graphql.String)(after),
		}

		if err := r.client.Query(ctx, &query, variables); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}

		allIssues = append(allIssues, query.Project.Issues.Nodes...)

		if !query.Project.Issues.PageInfo.HasNextPage {
			break
		}

		after = query.Project.Issues.PageInfo.EndCursor
		if after == nil {
			break
		}
	}

	return allIssues, nil
}
