package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"problemhub/catalog/internal/models"
	"problemhub/catalog/internal/oss"
	"problemhub/catalog/internal/repositories"
	"problemhub/catalog/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProblemRepo is the relational surface the problem endpoints consume.
type ProblemRepo interface {
	List(params repositories.ListParams) ([]models.ProblemSummary, error)
	GetBySlug(slug string) (*models.Problem, error)
	FrontendIDBySlug(slug string) (int, error)
	NeighborByFrontendID(frontendID int) (*models.NeighborSummary, error)
	RandomSlug() (string, error)
}

// ObjectStore fetches problem detail documents by storage key.
type ObjectStore interface {
	GetObjectBytes(ctx context.Context, key string) ([]byte, error)
}

type ProblemHandler struct {
	repo   ProblemRepo
	store  ObjectStore
	logger *zap.Logger
}

func NewProblemHandler(repo ProblemRepo, store ObjectStore, logger *zap.Logger) *ProblemHandler {
	return &ProblemHandler{repo: repo, store: store, logger: logger}
}

// parsePositiveInt falls back to def when s is absent, non-numeric or
// non-positive. Bad pagination input is defaulted, never rejected.
func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func (handler *ProblemHandler) internalError(writer http.ResponseWriter, message string) {
	utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: message,
	})
}

func (handler *ProblemHandler) notFound(writer http.ResponseWriter) {
	utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
		Code:    "problem_not_found",
		Message: "Problem not found",
	})
}

func (handler *ProblemHandler) ListProblemsHandler(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()
	params := repositories.ListParams{
		Page:   parsePositiveInt(query.Get("page"), 1),
		Limit:  parsePositiveInt(query.Get("limit"), repositories.DefaultListLimit),
		SortBy: query.Get("sortBy"),
		Order:  query.Get("order"),
	}

	results, err := handler.repo.List(params)
	if err != nil {
		handler.logger.Error("failed to list problems", zap.Error(err))
		handler.internalError(writer, "Failed to fetch problems")
		return
	}

	utils.JSON(writer, http.StatusOK, models.ProblemsResponse{
		Page:    params.Page,
		Limit:   params.Limit,
		Count:   len(results),
		Results: results,
	})
}

// GetProblemBySlugHandler merges the relational row with the extended
// detail document from object storage. The storage key is derived from
// the row, so the two reads cannot be reordered.
func (handler *ProblemHandler) GetProblemBySlugHandler(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	problem, err := handler.repo.GetBySlug(slug)
	if errors.Is(err, repositories.ErrNotFound) {
		handler.notFound(writer)
		return
	}
	if err != nil {
		handler.logger.Error("failed to fetch problem", zap.String("slug", slug), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	key := oss.ProblemKey(string(problem.Difficulty), problem.FrontendID, problem.Slug)
	blob, err := handler.store.GetObjectBytes(request.Context(), key)
	if err != nil {
		handler.logger.Error("failed to fetch problem document", zap.String("key", key), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	detail, err := mergeDetail(problem, blob)
	if err != nil {
		handler.logger.Error("failed to merge problem document", zap.String("key", key), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	utils.JSON(writer, http.StatusOK, detail)
}

// mergeDetail overlays the detail document's fields onto the relational
// metadata. The document is applied last so its fields take precedence on
// overlapping keys.
func mergeDetail(problem *models.Problem, blob []byte) (map[string]any, error) {
	metadata, err := json.Marshal(problem)
	if err != nil {
		return nil, err
	}

	merged := map[string]any{}
	if err := json.Unmarshal(metadata, &merged); err != nil {
		return nil, err
	}

	var document map[string]any
	if err := json.Unmarshal(blob, &document); err != nil {
		return nil, err
	}
	for k, v := range document {
		merged[k] = v
	}
	return merged, nil
}

func (handler *ProblemHandler) GetNextProblemHandler(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	frontendID, err := handler.repo.FrontendIDBySlug(slug)
	if errors.Is(err, repositories.ErrNotFound) {
		handler.notFound(writer)
		return
	}
	if err != nil {
		handler.logger.Error("failed to resolve slug", zap.String("slug", slug), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	next, err := handler.repo.NeighborByFrontendID(frontendID + 1)
	if errors.Is(err, repositories.ErrNotFound) {
		// No problem after this one is a normal state, not a 404.
		utils.JSON(writer, http.StatusOK, models.NextResponse{Next: nil})
		return
	}
	if err != nil {
		handler.logger.Error("failed to fetch next problem", zap.String("slug", slug), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	utils.JSON(writer, http.StatusOK, models.NextResponse{Next: next})
}

// GetPrevProblemHandler mirrors next except for the unknown-slug case: the
// slug lookup is unguarded, so an unknown slug surfaces as an internal
// error rather than a 404. Existing clients depend on this; confirm with
// them before changing it.
func (handler *ProblemHandler) GetPrevProblemHandler(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	frontendID, err := handler.repo.FrontendIDBySlug(slug)
	if err != nil {
		handler.logger.Error("failed to resolve slug", zap.String("slug", slug), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	prev, err := handler.repo.NeighborByFrontendID(frontendID - 1)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.JSON(writer, http.StatusOK, models.PrevResponse{Prev: nil})
		return
	}
	if err != nil {
		handler.logger.Error("failed to fetch previous problem", zap.String("slug", slug), zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	utils.JSON(writer, http.StatusOK, models.PrevResponse{Prev: prev})
}

func (handler *ProblemHandler) GetRandomProblemHandler(writer http.ResponseWriter, request *http.Request) {
	slug, err := handler.repo.RandomSlug()
	if err != nil {
		handler.logger.Error("failed to pick random problem", zap.Error(err))
		handler.internalError(writer, "Failed to fetch problem")
		return
	}

	utils.JSON(writer, http.StatusOK, models.RandomResponse{
		Random: models.RandomProblem{Slug: slug},
	})
}
