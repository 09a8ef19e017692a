package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"problemhub/catalog/internal/models"
	"problemhub/catalog/internal/testhelpers"

	"github.com/lib/pq"
)

func newRepo(t *testing.T) *ProblemRepository {
	t.Helper()
	return &ProblemRepository{DB: testhelpers.SetupTestDB(t)}
}

func seedProblems(t *testing.T, repo *ProblemRepository, problems ...models.Problem) {
	t.Helper()
	for i := range problems {
		if err := repo.DB.Create(&problems[i]).Error; err != nil {
			t.Fatalf("failed to seed problem %q: %v", problems[i].Slug, err)
		}
	}
}

func testProblem(id int, slug string) models.Problem {
	return models.Problem{
		ProblemID:  id,
		FrontendID: id,
		Slug:       slug,
		Title:      fmt.Sprintf("Problem %d", id),
		Difficulty: models.Easy,
		Tags:       pq.StringArray{"array"},
		Companies:  pq.StringArray{},
		CreatedAt:  time.Date(2024, time.January, id, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderExpr(t *testing.T) {
	cases := []struct {
		sortBy, order string
		want          string
	}{
		{"frequency", "asc", "frequency ASC, frontend_id ASC"},
		{"frequency", "desc", "frequency DESC, frontend_id ASC"},
		{"contestPoint", "", "contest_point DESC, frontend_id ASC"},
		{"difficulty", "asc", "difficulty_rank ASC, frontend_id ASC"},
		// direction is ascending only for the exact literal "asc"
		{"acceptance", "Asc", "acceptance DESC, frontend_id ASC"},
		{"tags", "asc", "(SELECT MIN(t) FROM unnest(tags) AS t) ASC, frontend_id ASC"},
		// newest/oldest override the requested direction
		{"newest", "asc", "created_at DESC, frontend_id ASC"},
		{"oldest", "desc", "created_at ASC, frontend_id ASC"},
		// unrecognized tokens fall back to the sequential id
		{"bogus", "asc", "frontend_id ASC, frontend_id ASC"},
		{"", "", "frontend_id DESC, frontend_id ASC"},
	}

	for _, tc := range cases {
		if got := orderExpr(tc.sortBy, tc.order); got != tc.want {
			t.Errorf("orderExpr(%q, %q) = %q, want %q", tc.sortBy, tc.order, got, tc.want)
		}
	}
}

func TestList_Pagination(t *testing.T) {
	repo := newRepo(t)
	seedProblems(t, repo,
		testProblem(1, "a"), testProblem(2, "b"), testProblem(3, "c"),
		testProblem(4, "d"), testProblem(5, "e"),
	)

	results, err := repo.List(ListParams{Page: 2, Limit: 2, Order: "asc"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].FrontendID != 3 || results[1].FrontendID != 4 {
		t.Fatalf("wrong page contents: %+v", results)
	}
}

func TestList_CountNeverExceedsLimit(t *testing.T) {
	repo := newRepo(t)
	seedProblems(t, repo, testProblem(1, "a"), testProblem(2, "b"), testProblem(3, "c"))

	results, err := repo.List(ListParams{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(results) > 2 {
		t.Fatalf("result count %d exceeds limit 2", len(results))
	}
}

func TestList_SortByFrequency(t *testing.T) {
	repo := newRepo(t)
	low := testProblem(1, "low")
	low.Frequency = 0.1
	high := testProblem(2, "high")
	high.Frequency = 0.9
	mid := testProblem(3, "mid")
	mid.Frequency = 0.5
	seedProblems(t, repo, low, high, mid)

	results, err := repo.List(ListParams{Page: 1, Limit: 10, SortBy: "frequency", Order: "desc"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if results[0].Slug != "high" || results[1].Slug != "mid" || results[2].Slug != "low" {
		t.Fatalf("wrong frequency order: %+v", results)
	}
}

func TestList_NewestIgnoresRequestedOrder(t *testing.T) {
	repo := newRepo(t)
	seedProblems(t, repo, testProblem(1, "old"), testProblem(2, "new"))

	results, err := repo.List(ListParams{Page: 1, Limit: 10, SortBy: "newest", Order: "asc"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if results[0].Slug != "new" {
		t.Fatalf("expected newest first regardless of order param, got %+v", results)
	}
}

func TestList_SortTieBreakIsStable(t *testing.T) {
	repo := newRepo(t)
	a := testProblem(1, "a")
	b := testProblem(2, "b")
	a.Frequency, b.Frequency = 0.5, 0.5
	seedProblems(t, repo, b, a)

	results, err := repo.List(ListParams{Page: 1, Limit: 10, SortBy: "frequency", Order: "desc"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if results[0].FrontendID != 1 || results[1].FrontendID != 2 {
		t.Fatalf("expected frontend_id tie-break, got %+v", results)
	}
}

func TestGetBySlug(t *testing.T) {
	repo := newRepo(t)
	seedProblems(t, repo, testProblem(1, "two-sum"))

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetBySlug("two-sum")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FrontendID != 1 || got.Title != "Problem 1" {
			t.Fatalf("unexpected problem: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := repo.GetBySlug("missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFrontendIDBySlug(t *testing.T) {
	repo := newRepo(t)
	seedProblems(t, repo, testProblem(7, "lucky"))

	id, err := repo.FrontendIDBySlug("lucky")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected frontend id 7, got %d", id)
	}

	if _, err := repo.FrontendIDBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNeighborByFrontendID(t *testing.T) {
	repo := newRepo(t)
	seedProblems(t, repo, testProblem(1, "a"), testProblem(2, "b"))

	t.Run("present", func(t *testing.T) {
		got, err := repo.NeighborByFrontendID(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Slug != "b" || got.Title != "Problem 2" {
			t.Fatalf("unexpected neighbor: %+v", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, err := repo.NeighborByFrontendID(3); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRandomSlug(t *testing.T) {
	repo := newRepo(t)

	if _, err := repo.RandomSlug(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty table, got %v", err)
	}

	seedProblems(t, repo, testProblem(1, "only"))
	slug, err := repo.RandomSlug()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "only" {
		t.Fatalf("expected slug %q, got %q", "only", slug)
	}
}
