package service

import (
	"book-catalog/internal/domains/book/model"
	"context"
)

// ServiceInterface - read-only catalog operations shared by every front-end
type ServiceInterface interface {
	Catalog() *model.Catalog
	NewSession() *Session
	GetSnapshot(ctx context.Context) (*model.CatalogSnapshot, error)
	GetBookDetail(ctx context.Context, id string) (*model.Detail, error)
	ListAuthors(ctx context.Context) []model.Option
	ListGenres(ctx context.Context) []model.Option
}
