package repositories

import (
	"errors"

	"problemhub/catalog/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("problem not found")

// DefaultListLimit is the page size used when the caller does not send a
// usable limit parameter.
const DefaultListLimit = 100

const defaultSortColumn = "frontend_id"

// sortColumns is the closed set of sortable expressions. Sort tokens from
// the request never reach the query text themselves; anything outside this
// map falls back to the sequential id.
var sortColumns = map[string]string{
	"frequency":    "frequency",
	"contestPoint": "contest_point",
	"difficulty":   "difficulty_rank",
	"acceptance":   "acceptance",
	"tags":         "(SELECT MIN(t) FROM unnest(tags) AS t)",
	"newest":       "created_at",
	"oldest":       "created_at",
}

// ListParams are the listing parameters after request-level defaulting.
type ListParams struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
}

func (p ListParams) offset() int { return (p.Page - 1) * p.Limit }

// orderExpr maps a sort token and direction onto the ORDER BY clause.
// Direction is ascending only for the exact literal "asc". newest/oldest
// force their own direction regardless of the requested one, and
// frontend_id is always appended as a stable tie-break.
func orderExpr(sortBy, order string) string {
	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		column = defaultSortColumn
	}

	switch sortBy {
	case "newest":
		dir = "DESC"
	case "oldest":
		dir = "ASC"
	}

	return column + " " + dir + ", frontend_id ASC"
}

type ProblemRepository struct {
	DB *gorm.DB
}

// List returns one page of problem summaries ordered per the sort token.
func (r *ProblemRepository) List(params ListParams) ([]models.ProblemSummary, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = DefaultListLimit
	}

	var results []models.ProblemSummary
	err := r.DB.Model(&models.Problem{}).
		Select("problem_id", "frontend_id", "slug", "title", "difficulty", "acceptance", "is_premium").
		Order(orderExpr(params.SortBy, params.Order)).
		Limit(params.Limit).
		Offset(params.offset()).
		Find(&results).Error
	return results, err
}

func (r *ProblemRepository) GetBySlug(slug string) (*models.Problem, error) {
	var problem models.Problem
	err := r.DB.First(&problem, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// FrontendIDBySlug resolves a slug to its user-facing sequential id.
func (r *ProblemRepository) FrontendIDBySlug(slug string) (int, error) {
	var problem models.Problem
	err := r.DB.Select("frontend_id").First(&problem, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return problem.FrontendID, nil
}

// NeighborByFrontendID returns the slug/title of the problem at the given
// sequential id, or ErrNotFound when that id is unoccupied.
func (r *ProblemRepository) NeighborByFrontendID(frontendID int) (*models.NeighborSummary, error) {
	var neighbor models.NeighborSummary
	err := r.DB.Model(&models.Problem{}).
		Select("slug", "title").
		Where("frontend_id = ?", frontendID).
		Take(&neighbor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &neighbor, nil
}

// RandomSlug samples a single problem uniformly.
func (r *ProblemRepository) RandomSlug() (string, error) {
	var problem models.Problem
	err := r.DB.Select("slug").Order("RANDOM()").Take(&problem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return problem.Slug, nil
}
