package models

// ProblemsResponse is the paginated payload of the listing endpoint.
type ProblemsResponse struct {
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Count   int              `json:"count"`
	Results []ProblemSummary `json:"results"`
}

// SearchResponse carries flattened search hits with their relevance score.
type SearchResponse struct {
	Count   int              `json:"count"`
	Results []map[string]any `json:"results"`
}

type RandomProblem struct {
	Slug string `json:"slug"`
}

type RandomResponse struct {
	Random RandomProblem `json:"random"`
}

// NextResponse holds the following problem, or null when the current
// problem is already the last one.
type NextResponse struct {
	Next *NeighborSummary `json:"next"`
}

type PrevResponse struct {
	Prev *NeighborSummary `json:"prev"`
}

// uniform error payload
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
