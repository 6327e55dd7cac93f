package main

import (
	"encoding/json"
	"fmt"
	"io"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"

	"github.com/spf13/cobra"
)

const noResultsMessage = "No results found. Your filters might be too narrow."

var (
	titleFlag  string
	authorFlag string
	genreFlag  string
	pagesFlag  int
	jsonFlag   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter the catalog and print the first page(s) of matches",
	Example: `  catalog search --title dune
  catalog search --genre g7 --pages 2
  catalog search --author a1 --json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Case-insensitive title substring")
	searchCmd.Flags().StringVarP(&authorFlag, "author", "a", model.AnyOption, "Author id or 'any'")
	searchCmd.Flags().StringVarP(&genreFlag, "genre", "g", model.AnyOption, "Genre id or 'any'")
	searchCmd.Flags().IntVarP(&pagesFlag, "pages", "p", 1, "Number of pages to reveal")
	searchCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print pages as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Cleanup()

	criteria := model.FilterCriteria{
		Title:    titleFlag,
		AuthorID: authorFlag,
		GenreID:  genreFlag,
	}
	if err := c.Catalog.CheckCriteria(criteria); err != nil {
		return fmt.Errorf("%w (see 'catalog options')", err)
	}

	session := c.BookService.NewSession()
	pages := searchPages(session, criteria, pagesFlag)

	out := cmd.OutOrStdout()
	if jsonFlag {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	}

	for _, p := range pages {
		renderPage(out, p)
	}
	renderFooter(out, pages[len(pages)-1])
	return nil
}

// searchPages applies criteria and then loads up to n-1 further pages,
// stopping once the match-set is exhausted.
func searchPages(session *service.Session, criteria model.FilterCriteria, n int) []service.Page {
	page := session.ApplyFilter(criteria)
	pages := []service.Page{page}

	for i := 1; i < n && page.HasMore; i++ {
		page = session.LoadNextPage()
		pages = append(pages, page)
	}
	return pages
}

func renderPage(w io.Writer, p service.Page) {
	for _, b := range p.Previews {
		fmt.Fprintf(w, "%-12s %s · %s\n", b.ID, b.Title, b.AuthorName)
	}
}

func renderFooter(w io.Writer, last service.Page) {
	switch {
	case last.NoResults:
		fmt.Fprintln(w, noResultsMessage)
	case last.HasMore:
		fmt.Fprintf(w, "\n%s  (use --pages to reveal more)\n", last.ShowMoreLabel())
	default:
		fmt.Fprintf(w, "\n%d book(s)\n", last.Total)
	}
}
