package main

import (
	"fmt"
	"io"

	"book-catalog/internal/domains/book/model"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:       "options [authors|genres]",
	Short:     "List the values accepted by --author and --genre",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"authors", "genres"},
	RunE:      runOptions,
}

func runOptions(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Cleanup()

	out := cmd.OutOrStdout()
	which := ""
	if len(args) == 1 {
		which = args[0]
	}

	if which == "" || which == "authors" {
		renderOptions(out, "Authors", c.Catalog.AuthorOptions())
	}
	if which == "" || which == "genres" {
		renderOptions(out, "Genres", c.Catalog.GenreOptions())
	}
	return nil
}

func renderOptions(w io.Writer, title string, opts []model.Option) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, o := range opts {
		fmt.Fprintf(w, "  %-12s %s\n", o.Value, o.Label)
	}
}
