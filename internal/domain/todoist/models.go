package todoist

// Task ist die Wire-Repräsentation eines Tasks der Todoist REST v2 API.
type Task struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	ProjectID   string   `json:"project_id"`
	SectionID   string   `json:"section_id,omitempty"`
	Completed   bool     `json:"is_completed"`
	Labels      []string `json:"labels"`
	Priority    int      `json:"priority"`
	Due         *Due     `json:"due,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Due ist das Fälligkeits-Objekt der API; Date ist ein YYYY-MM-DD String.
type Due struct {
	Date      string `json:"date"`
	String    string `json:"string,omitempty"`
	Recurring bool   `json:"is_recurring"`
}
