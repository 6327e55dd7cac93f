package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"book-catalog/internal/domains/book/model"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// JSONSource reads a CatalogSnapshot from a JSON file.
type JSONSource struct {
	Path     string
	PageSize int // overrides the file's page_size when > 0
}

func NewJSONSource(path string, pageSize int) *JSONSource {
	return &JSONSource{Path: path, PageSize: pageSize}
}

func (s *JSONSource) Load(ctx context.Context) (*model.Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}

	var snapshot model.CatalogSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.Path, err)
	}

	return fromSnapshot(&snapshot, s.PageSize, s.Path)
}

// YAMLSource reads a CatalogSnapshot from a YAML file.
type YAMLSource struct {
	Path     string
	PageSize int
}

func NewYAMLSource(path string, pageSize int) *YAMLSource {
	return &YAMLSource{Path: path, PageSize: pageSize}
}

func (s *YAMLSource) Load(ctx context.Context) (*model.Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}

	var snapshot model.CatalogSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.Path, err)
	}

	return fromSnapshot(&snapshot, s.PageSize, s.Path)
}

func fromSnapshot(snapshot *model.CatalogSnapshot, pageSize int, origin string) (*model.Catalog, error) {
	catalog, err := snapshot.ToCatalog(pageSize)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", origin, err)
	}

	log.Info().
		Str("origin", origin).
		Int("books", len(catalog.Books)).
		Int("authors", len(catalog.Authors)).
		Int("genres", len(catalog.Genres)).
		Int("page_size", catalog.PageSize).
		Msg("catalog loaded")

	return catalog, nil
}
