package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", SheetBooks))
	_, err := f.NewSheet(SheetAuthors)
	require.NoError(t, err)
	_, err = f.NewSheet(SheetGenres)
	require.NoError(t, err)

	rows := map[string][][]interface{}{
		SheetBooks: {
			{"id", "title", "author", "genres", "description", "published", "image"},
			{"b1", "Dune", "a1", "g1, g2", "Arrakis", "1965-08-01"},
			{""},
			{"b2", "Lathe of Heaven", "a2", "g1", "", "1971"},
		},
		SheetAuthors: {
			{"id", "name"},
			{"a1", "Frank Herbert"},
			{"a2", "Ursula K. Le Guin"},
		},
		SheetGenres: {
			{"id", "name"},
			{"g1", "Science Fiction"},
			{"g2", "Adventure"},
		},
	}
	for sheet, data := range rows {
		for i, row := range data {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
	}
	return f
}

func TestReadWorkbook(t *testing.T) {
	f := buildWorkbook(t)
	defer f.Close()

	c, err := ReadWorkbook(f, 3, "test")

	require.NoError(t, err)
	assert.Equal(t, 3, c.PageSize)
	require.Len(t, c.Books, 2)
	assert.Equal(t, []string{"g1", "g2"}, c.Books[0].GenreIDs)
	assert.Equal(t, "Arrakis", c.Books[0].Description)
	assert.Empty(t, c.Books[0].Image)
	assert.Equal(t, "b2", c.Books[1].ID)
	assert.Equal(t, "Adventure", c.GenreName("g2"))
}

func TestXLSXSource_Load(t *testing.T) {
	f := buildWorkbook(t)
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	c, err := NewXLSXSource(path, 0).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, c.Books, 2)
	assert.Equal(t, "Frank Herbert", c.AuthorName("a1"))
}

func TestReadWorkbook_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadWorkbook(f, 0, "test")

	assert.ErrorContains(t, err, SheetAuthors)
}
