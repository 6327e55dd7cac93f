package model

import (
	"errors"
	"net/http"

	"book-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrBookNotFound         = errors.New("book not found")
	ErrAuthorNotFound       = errors.New("author not found")
	ErrGenreNotFound        = errors.New("genre not found")
	ErrInvalidPublishedDate = errors.New("invalid published date")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound:   {Status: http.StatusNotFound, Code: "BOOK_NOT_FOUND", Message: "The specified book does not exist"},
	ErrAuthorNotFound: {Status: http.StatusNotFound, Code: "AUTHOR_NOT_FOUND", Message: "The specified author does not exist"},
	ErrGenreNotFound:  {Status: http.StatusNotFound, Code: "GENRE_NOT_FOUND", Message: "The specified genre does not exist"},
}

// HandleBookError writes the mapped error response. It returns false when
// err is nil so callers can continue.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for target, cfg := range bookErrorMap {
		if errors.Is(err, target) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("[Handler] unexpected book error")
	response.InternalServerError(c, "Internal server error")
	return true
}
