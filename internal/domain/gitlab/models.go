package gitlab

// Issue wie von der GitLab GraphQL API geliefert.
type Issue struct {
	IID     string  `graphql:"iid"`
	Title   string  `graphql:"title"`
	State   string  `graphql:"state"`
	DueDate *string `graphql:"dueDate"`
	WebURL  string  `graphql:"webUrl"`
}

type PageInfo struct {
	HasNextPage bool    `graphql:"hasNextPage"`
	EndCursor   *string `graphql:"endCursor"`
}

type ProjectIssuesQuery struct {
	Project struct {
		Issues struct {
			Nodes    []Issue  `graphql:"nodes"`
			PageInfo PageInfo `graphql:"pageInfo"`
		} `graphql:"issues(first: $first, after: $after)"`
	} `graphql:"project(fullPath: $projectPath)"`
}
