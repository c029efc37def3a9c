// Package market aggregates skill frequencies across batches of job
// postings into ranked demand profiles.
package market

import "context"

// Posting is one job-posting record supplied by a document source.
type Posting struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Text returns the combined text analyzed for the posting.
func (p Posting) Text() string {
	if p.Title == "" {
		return p.Description
	}
	return p.Title + " " + p.Description
}

// DocumentSource supplies job postings for a role. Providers (job-board
// APIs, fixtures, crawl archives) live outside the engine; only this
// contract is part of the core. A failed fetch must surface as an error,
// never as an empty batch, so aggregation cannot fabricate a profile from
// zero real postings.
type DocumentSource interface {
	FetchPostings(ctx context.Context, role string) ([]Posting, error)
}
