package service

import (
	"fmt"
	"strings"

	"book-catalog/internal/domains/book/model"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Book list"

var exportHeaders = []string{
	"ID",
	"Title",
	"Author",
	"Genres",
	"Published",
	"Image",
	"Description",
}

// ExportMatches writes the session's full match-set to a new workbook.
func (s *Session) ExportMatches() (*excelize.File, error) {
	return BuildBooksExcelFile(s.catalog, s.matches)
}

// BuildBooksExcelFile renders books as a single-sheet workbook with a bold
// header row. Author and genre ids are resolved to display names.
func BuildBooksExcelFile(catalog *model.Catalog, books []model.Book) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheetName, "A1", lastCol, headerStyle)
	}

	for i := range books {
		b := &books[i]
		rowNum := i + 2

		genres := make([]string, len(b.GenreIDs))
		for j, g := range b.GenreIDs {
			genres[j] = catalog.GenreName(g)
		}

		published := ""
		if !b.Published.IsZero() {
			published = b.Published.Format("2006-01-02")
		}

		values := []interface{}{
			b.ID,
			b.Title,
			catalog.AuthorName(b.AuthorID),
			strings.Join(genres, ", "),
			published,
			b.Image,
			b.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowNum, err)
			}
		}
	}

	return f, nil
}
