package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	bookRepo "book-catalog/internal/domains/book/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
  "page_size": 12,
  "authors": {"a1": "Frank Herbert"},
  "genres": {"g1": "Science Fiction"},
  "books": [
    {"id": "b1", "title": "Dune", "author": "a1", "genres": ["g1"], "published": "1965-08-01"}
  ]
}`

func TestNewContainer_JSONSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))
	t.Setenv("CATALOG_SOURCE", "json")
	t.Setenv("CATALOG_PATH", path)
	t.Setenv("REDIS_ENABLED", "false")

	c, err := NewContainer(context.Background(), Options{PageSize: 5})
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Len(t, c.Catalog.Books, 1)
	assert.Equal(t, 5, c.Catalog.PageSize)
	assert.Nil(t, c.Cache)
	assert.Nil(t, c.DB)
	assert.NotNil(t, c.BookHandler)

	page := c.BookService.NewSession().LoadNextPage()
	assert.False(t, page.HasMore)
}

func TestNewContainer_OverridesWinOverEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))
	t.Setenv("CATALOG_SOURCE", "yaml")
	t.Setenv("CATALOG_PATH", "does-not-exist.yaml")

	c, err := NewContainer(context.Background(), Options{Source: bookRepo.SourceJSON, Path: path})
	require.NoError(t, err)
	defer c.Cleanup()

	assert.IsType(t, &bookRepo.JSONSource{}, c.Source)
}

func TestNewContainer_MissingFile(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "json")

	_, err := NewContainer(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope.json")})

	assert.ErrorContains(t, err, "failed to load catalog")
}
