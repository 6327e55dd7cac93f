package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"book-catalog/pkg/container"
	"book-catalog/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	sourceFlag   string
	pathFlag     string
	urlFlag      string
	pageSizeFlag int
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse a book catalog from the terminal",
	Long: `catalog loads a book dataset once (JSON, YAML, XLSX, PostgreSQL or a
catalog server) and filters it locally by title, author and genre.

Run without arguments to open the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "production"
		}
		if verbose {
			env = "development"
		}
		logger.Init(env, cmd.ErrOrStderr())
		return nil
	},
	RunE: runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Catalog source: json, yaml, xlsx, postgres, http (default $CATALOG_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "Catalog file for json/yaml/xlsx sources (default $CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "Catalog server base URL for the http source (default $CATALOG_URL)")
	rootCmd.PersistentFlags().IntVar(&pageSizeFlag, "page-size", 0, "Books per page (default: the dataset's value)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(browseCmd, searchCmd, showCmd, exportCmd, optionsCmd)
}

// loadContainer builds the container from env plus command-line overrides.
func loadContainer(ctx context.Context) (*container.Container, error) {
	return container.NewContainer(ctx, container.Options{
		Source:   sourceFlag,
		Path:     pathFlag,
		URL:      urlFlag,
		PageSize: pageSizeFlag,
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
