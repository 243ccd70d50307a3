package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hufschlaeger.net/tasksync/internal/config"
	"hufschlaeger.net/tasksync/internal/repository/openai"
	"hufschlaeger.net/tasksync/internal/service"
	"hufschlaeger.net/tasksync/internal/storage"
	"hufschlaeger.net/tasksync/internal/views"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "tasksync",
		Short:         "Synchronisiert Remote-Tasks in einen lokalen Store",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(summarizeCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// openStore öffnet den Store; der Aufrufer schliesst ihn über die
// zurückgegebene Funktion auf jedem Ausgangspfad.
func openStore(cfg *config.Config) (*storage.Store, func(), error) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func syncCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Tasks von der Remote-Quelle in den lokalen Store mergen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateSync(source); err != nil {
				return err
			}

			var src service.Source
			switch source {
			case "gitlab":
				src = service.NewGitLabSource(cfg)
			default:
				src = service.NewTodoistSource(cfg)
			}

			store, release, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer release()

			stats, err := service.NewSyncer(store).Sync(cmd.Context(), src)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Sync abgeschlossen: %d Tasks von %s übernommen, %d Records im Store\n",
				stats.Fetched, src.Name(), stats.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "todoist", "Remote-Quelle (todoist, gitlab)")

	return cmd
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Offene Tasks als Markdown-Checkliste ins Vault schreiben",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateExport(); err != nil {
				return err
			}

			store, release, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer release()

			tasks, err := store.ListOpen(cmd.Context())
			if err != nil {
				return err
			}

			path, err := service.NewExporter(cfg).Export(tasks, output)
			if err != nil {
				return err
			}

			fmt.Printf("✅ %d Tasks nach %s geschrieben\n", len(tasks), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Dateiname im Vault (Standard: '<Datum> Open Tasks.md')")

	return cmd
}

func summarizeCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Offene Tasks vom Chat-Modell priorisieren lassen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateSummarize(); err != nil {
				return err
			}
			if model != "" {
				cfg.OpenAIModel = model
			}

			store, release, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer release()

			tasks, err := store.ListOpen(cmd.Context())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("ℹ️  Keine offenen Tasks")
				return nil
			}

			client := openai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.GetOpenAIBaseURL())
			reply, err := service.NewSummarizer(client).Summarize(cmd.Context(), tasks)
			if err != nil {
				return err
			}

			fmt.Println(views.RenderSummary(reply))
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Chat-Modell (Standard: OPENAI_MODEL bzw. gpt-4o)")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Offene Tasks im Terminal anzeigen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			store, release, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer release()

			tasks, err := store.ListOpen(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Print(views.RenderOpenTasks(tasks))
			return nil
		},
	}
}
