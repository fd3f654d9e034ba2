package services

import "context"

// Summarizer is the opaque text-in/text-out AI collaborator. The tree
// engine never interprets the output.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummaryService produces an AI study review for a stored document
type SummaryService interface {
	ReviewDocument(ctx context.Context, docID int64) (string, error)
}
