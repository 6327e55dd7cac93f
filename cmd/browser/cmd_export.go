package main

import (
	"fmt"

	"book-catalog/internal/domains/book/model"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var outputFlag string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every book matching the filters to an .xlsx file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Case-insensitive title substring")
	exportCmd.Flags().StringVarP(&authorFlag, "author", "a", model.AnyOption, "Author id or 'any'")
	exportCmd.Flags().StringVarP(&genreFlag, "genre", "g", model.AnyOption, "Genre id or 'any'")
	exportCmd.Flags().StringVarP(&outputFlag, "output", "o", "books.xlsx", "Output workbook")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	page := session.ApplyFilter(criteria)

	f, err := session.ExportMatches()
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(outputFlag); err != nil {
		return fmt.Errorf("save %s: %w", outputFlag, err)
	}

	log.Info().Str("file", outputFlag).Int("books", page.Total).Msg("export written")
	fmt.Fprintf(cmd.OutOrStdout(), "%d book(s) written to %s\n", page.Total, outputFlag)
	return nil
}
