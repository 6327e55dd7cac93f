package service

import (
	"testing"

	"book-catalog/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMatches(t *testing.T) {
	s := NewSession(newTestCatalog(6, 4))
	s.ApplyFilter(model.FilterCriteria{AuthorID: "a2"})

	f, err := s.ExportMatches()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, []string{
		"b1",
		"Book 1",
		"Frank Herbert",
		"Science Fiction",
		"1991-03-01",
		"https://img.example/1.jpg",
		"Description",
	}, rows[1])
	assert.Equal(t, "b5", rows[3][0])
}

func TestBuildBooksExcelFile_Empty(t *testing.T) {
	f, err := BuildBooksExcelFile(newTestCatalog(0, 4), nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
