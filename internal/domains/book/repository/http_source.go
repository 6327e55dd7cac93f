package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"book-catalog/internal/domains/book/model"
)

// CatalogPath is where the dataset server publishes its snapshot.
const CatalogPath = "/api/v1/catalog"

// HTTPSource downloads the snapshot published by cmd/api. Filtering still
// happens locally; the server only hands out the dataset.
type HTTPSource struct {
	BaseURL  string
	PageSize int
	Client   *http.Client
}

func NewHTTPSource(baseURL string, pageSize int) *HTTPSource {
	return &HTTPSource{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		PageSize: pageSize,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type catalogEnvelope struct {
	Success bool                   `json:"success"`
	Data    *model.CatalogSnapshot `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *HTTPSource) Load(ctx context.Context) (*model.Catalog, error) {
	url := s.BaseURL + CatalogPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", url, err)
	}
	defer resp.Body.Close()

	var env catalogEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode catalog %s (status %d): %w", url, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !env.Success || env.Data == nil {
		msg := http.StatusText(resp.StatusCode)
		if env.Error != nil {
			msg = env.Error.Code + ": " + env.Error.Message
		}
		return nil, fmt.Errorf("fetch catalog %s: %s", url, msg)
	}

	return fromSnapshot(env.Data, s.PageSize, url)
}
