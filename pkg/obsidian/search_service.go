package obsidian

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultContextLength is the number of characters of context returned around
// each simple search match when the caller does not choose one.
const DefaultContextLength = 100

// SearchService handles searching in the vault.
type SearchService struct {
	client *Client
}

// SearchResult represents a single file matched by Simple search.
// Score and Matches may be absent.
type SearchResult struct {
	Filename string        `json:"filename"`
	Score    *float64      `json:"score,omitempty"`
	Matches  []SearchMatch `json:"matches,omitempty"`
}

// SearchMatch is one hit inside a file.
type SearchMatch struct {
	Match   MatchSpan `json:"match"`
	Context string    `json:"context"`
}

// MatchSpan holds the character offsets of a match.
type MatchSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Simple performs a simple text search. A contextLength of zero or less uses
// DefaultContextLength.
func (s *SearchService) Simple(ctx context.Context, query string, contextLength int) ([]SearchResult, error) {
	if contextLength <= 0 {
		contextLength = DefaultContextLength
	}
	path := fmt.Sprintf("/search/simple/?query=%s&contextLength=%d", EscapeComponent(query), contextLength)

	var results []SearchResult
	if err := s.client.do(ctx, Request{Path: path}, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results, nil
}

// Dataview performs a search using Dataview Query Language (DQL).
// Result rows are returned as decoded JSON values.
func (s *SearchService) Dataview(ctx context.Context, dql string) ([]any, error) {
	var results []any
	err := s.client.do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/search/",
		Header: map[string]string{"Content-Type": contentTypeDQL},
		Body:   dql,
	}, &results)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []any{}
	}
	return results, nil
}
