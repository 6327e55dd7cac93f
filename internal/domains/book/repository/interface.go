package repository

import (
	"book-catalog/internal/domains/book/model"
	"context"
	"errors"
)

var ErrUnsupportedSource = errors.New("unsupported catalog source")

// Source kinds accepted by CATALOG_SOURCE.
const (
	SourceJSON     = "json"
	SourceYAML     = "yaml"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
	SourceHTTP     = "http"
)

// Source - loads the dataset once at startup. The result is treated as
// trusted and is never written back.
type Source interface {
	Load(ctx context.Context) (*model.Catalog, error)
}
