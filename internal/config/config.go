package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissing markiert eine fehlende Pflicht-Einstellung. Wird vor jedem
// Store-Zugriff gemeldet; es findet keine Teilarbeit statt.
var ErrMissing = errors.New("missing configuration")

type Config struct {
	TodoistToken string

	GitLabToken   string
	GitLabURL     string
	GitLabProject string

	OpenAIKey   string
	OpenAIModel string

	VaultPath string
	DBPath    string

	Verbose bool
}

func NewConfig() (*Config, error) {
	// .env laden (ignoriere Fehler wenn Datei nicht existiert)
	if os.Getenv("GODOTENV_DISABLE") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Printf("⚠️  Warnung beim Laden der .env: %v\n", err)
		}
	}

	cfg := &Config{
		TodoistToken:  getEnv("TODOIST_API_TOKEN", ""),
		GitLabToken:   getEnv("GITLAB_TOKEN", ""),
		GitLabURL:     getEnv("GITLAB_URL", "https://gitlab.com"),
		GitLabProject: getEnv("GITLAB_PROJECT", ""),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		VaultPath:     getEnv("OBSIDIAN_VAULT", ""),
		DBPath:        getEnv("TASKSYNC_DB", "tasks.db"),
		Verbose:       getBoolEnv("VERBOSE", false),
	}

	if cfg.Verbose {
		cfg.printDebugInfo()
	}

	return cfg, nil
}

func (c *Config) printDebugInfo() {
	fmt.Printf("🔧 Configuration loaded:\n")
	fmt.Printf("   DB Path: %s\n", c.DBPath)
	fmt.Printf("   Vault Path: %s\n", c.VaultPath)
	fmt.Printf("   GitLab URL: %s\n", c.GitLabURL)
	fmt.Printf("   GitLab Project: %s\n", c.GitLabProject)
	fmt.Printf("   Has Todoist Token: %t\n", c.TodoistToken != "")
	fmt.Printf("   Has GitLab Token: %t\n", c.GitLabToken != "")
	fmt.Printf("   Has OpenAI Key: %t\n", c.OpenAIKey != "")
	fmt.Printf("   OpenAI Model: %s\n", c.OpenAIModel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// ValidateSync prüft die Voraussetzungen für die jeweilige Quelle.
func (c *Config) ValidateSync(source string) error {
	switch source {
	case "todoist":
		if c.TodoistToken == "" {
			return fmt.Errorf("%w: TODOIST_API_TOKEN", ErrMissing)
		}
	case "gitlab":
		if c.GitLabToken == "" {
			return fmt.Errorf("%w: GITLAB_TOKEN", ErrMissing)
		}
		if c.GitLabProject == "" {
			return fmt.Errorf("%w: GITLAB_PROJECT", ErrMissing)
		}
	default:
		return fmt.Errorf("unknown source %q (todoist, gitlab)", source)
	}
	return nil
}

func (c *Config) ValidateExport() error {
	if c.VaultPath == "" {
		return fmt.Errorf("%w: OBSIDIAN_VAULT", ErrMissing)
	}
	return nil
}

func (c *Config) ValidateSummarize() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY", ErrMissing)
	}
	return nil
}

func (c *Config) GetGitLabBaseURL() string {
	return strings.TrimSuffix(c.GitLabURL, "/")
}

func (c *Config) GetTodoistBaseURL() string {
	return "https://api.todoist.com/rest/v2"
}

func (c *Config) GetOpenAIBaseURL() string {
	return "https://api.openai.com/v1/chat/completions"
}
