package models

import (
	"time"

	"github.com/lib/pq"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Problem is one row of the problems table. Rows are written by the
// ingestion pipeline; this service only reads them.
//
// FrontendID is the user-facing sequential number and drives next/prev
// navigation. Slug is unique and immutable once created.
type Problem struct {
	ProblemID       int            `gorm:"primaryKey;column:problem_id" json:"problem_id"`
	FrontendID      int            `gorm:"column:frontend_id" json:"frontend_id"`
	Slug            string         `gorm:"uniqueIndex" json:"slug"`
	Title           string         `json:"title"`
	Difficulty      Difficulty     `json:"difficulty"`
	DifficultyRank  int            `gorm:"column:difficulty_rank" json:"-"` // precomputed Easy=1..Hard=3, used only for sorting
	Acceptance      float64        `json:"acceptance"`
	IsPremium       bool           `json:"is_premium"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	Companies       pq.StringArray `gorm:"type:text[]" json:"companies"`
	Likes           int            `json:"likes"`
	Dislikes        int            `json:"dislikes"`
	Upvotes         int            `json:"upvotes"`
	Downvotes       int            `json:"downvotes"`
	SubmissionCount int            `json:"submission_count"`
	IsVerified      bool           `json:"is_verified"`
	Frequency       float64        `json:"frequency"`
	ContestPoint    float64        `gorm:"column:contest_point" json:"contest_point"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (Problem) TableName() string { return "problems" }

// ProblemSummary is the projection returned by the listing endpoint.
type ProblemSummary struct {
	ProblemID  int        `json:"problem_id"`
	FrontendID int        `json:"frontend_id"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Acceptance float64    `json:"acceptance"`
	IsPremium  bool       `json:"is_premium"`
}

// NeighborSummary is the slug/title pair returned by next/prev navigation.
type NeighborSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
