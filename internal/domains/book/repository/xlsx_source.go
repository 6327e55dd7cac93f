package repository

import (
	"context"
	"fmt"
	"strings"

	"book-catalog/internal/domains/book/model"

	"github.com/xuri/excelize/v2"
)

// Sheet layout expected by XLSXSource. Row 1 of every sheet is a header.
//
//	Books:   id | title | author | genres (comma separated) | description | published | image
//	Authors: id | name
//	Genres:  id | name
const (
	SheetBooks   = "Books"
	SheetAuthors = "Authors"
	SheetGenres  = "Genres"
)

// XLSXSource reads the dataset from a workbook.
type XLSXSource struct {
	Path     string
	PageSize int
}

func NewXLSXSource(path string, pageSize int) *XLSXSource {
	return &XLSXSource{Path: path, PageSize: pageSize}
}

func (s *XLSXSource) Load(ctx context.Context) (*model.Catalog, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	return ReadWorkbook(f, s.PageSize, s.Path)
}

// ReadWorkbook decodes an already opened workbook.
func ReadWorkbook(f *excelize.File, pageSize int, origin string) (*model.Catalog, error) {
	authors, err := readLookupSheet(f, SheetAuthors)
	if err != nil {
		return nil, err
	}
	genres, err := readLookupSheet(f, SheetGenres)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(SheetBooks)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetBooks, err)
	}

	snapshot := &model.CatalogSnapshot{
		Authors: authors,
		Genres:  genres,
		Books:   make([]model.BookRecord, 0, len(rows)),
	}
	for i, row := range rows {
		if i == 0 || len(row) == 0 || strings.TrimSpace(cell(row, 0)) == "" {
			continue
		}
		snapshot.Books = append(snapshot.Books, model.BookRecord{
			ID:          strings.TrimSpace(cell(row, 0)),
			Title:       cell(row, 1),
			Author:      strings.TrimSpace(cell(row, 2)),
			Genres:      splitList(cell(row, 3)),
			Description: cell(row, 4),
			Published:   cell(row, 5),
			Image:       strings.TrimSpace(cell(row, 6)),
		})
	}

	return fromSnapshot(snapshot, pageSize, origin)
}

func readLookupSheet(f *excelize.File, sheet string) (map[string]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	out := make(map[string]string, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		id := strings.TrimSpace(cell(row, 0))
		if id == "" {
			continue
		}
		out[id] = cell(row, 1)
	}
	return out, nil
}

// GetRows trims trailing empty cells, so short rows are normal.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
