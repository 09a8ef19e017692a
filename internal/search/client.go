package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

const indexName = "problems"

// Client queries the problems search index.
type Client struct {
	es    *elasticsearch.Client
	index string
}

func NewClient(address, username, password string) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{address},
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, err
	}
	return &Client{es: es, index: indexName}, nil
}

// SearchProblems runs the assembled bool query and flattens each hit into
// its stored fields plus the engine-assigned relevance score. Stored
// fields win if a document happens to carry its own "score" field.
func (c *Client) SearchProblems(ctx context.Context, q, difficulty string, tags []string) ([]map[string]any, error) {
	body, err := json.Marshal(buildQuery(q, difficulty, tags))
	if err != nil {
		return nil, err
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search request failed: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  *float64       `json:"_score"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		doc := make(map[string]any, len(hit.Source)+1)
		doc["score"] = hit.Score
		for k, v := range hit.Source {
			doc[k] = v
		}
		results = append(results, doc)
	}
	return results, nil
}
