package handlers

import (
	"context"
	"net/http"
	"strings"

	"problemhub/catalog/internal/models"
	"problemhub/catalog/internal/utils"

	"go.uber.org/zap"
)

// ProblemSearcher runs a query against the problems search index.
type ProblemSearcher interface {
	SearchProblems(ctx context.Context, q, difficulty string, tags []string) ([]map[string]any, error)
}

type SearchHandler struct {
	searcher ProblemSearcher
	logger   *zap.Logger
}

func NewSearchHandler(searcher ProblemSearcher, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{searcher: searcher, logger: logger}
}

func (handler *SearchHandler) SearchProblemsHandler(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	q := query.Get("q")
	difficulty := query.Get("difficulty")

	var tags []string
	if raw := query.Get("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	results, err := handler.searcher.SearchProblems(request.Context(), q, difficulty, tags)
	if err != nil {
		handler.logger.Error("search failed", zap.String("q", q), zap.Error(err))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Search failed",
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SearchResponse{
		Count:   len(results),
		Results: results,
	})
}
