package search

import (
	"regexp"
	"strconv"
	"strings"
)

const maxResults = 50

var numericQuery = regexp.MustCompile(`^\d+$`)

// buildQuery assembles the bool query for the problems index.
//
// A purely numeric q is an exact frontend_id lookup; any other non-empty q
// becomes a fuzzy multi-field match weighted towards title. difficulty and
// tags go into filter context so they constrain results without affecting
// the relevance score. With no must clause at all, match_all keeps the
// filters applicable.
func buildQuery(q, difficulty string, tags []string) map[string]any {
	must := []any{}
	filter := []any{}

	switch {
	case numericQuery.MatchString(q):
		id, _ := strconv.Atoi(q)
		must = append(must, map[string]any{
			"term": map[string]any{"frontend_id": id},
		})
	case q != "":
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"title^3", "slug^2", "tags", "companies"},
				"fuzziness": "AUTO",
			},
		})
	}

	if difficulty != "" {
		filter = append(filter, map[string]any{
			"term": map[string]any{"difficulty": strings.ToLower(difficulty)},
		})
	}
	if len(tags) > 0 {
		filter = append(filter, map[string]any{
			"terms": map[string]any{"tags": tags},
		})
	}

	if len(must) == 0 {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	return map[string]any{
		"size": maxResults,
		"query": map[string]any{
			"bool": map[string]any{
				"must":   must,
				"filter": filter,
			},
		},
	}
}
