package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jotdown/internal/domain"
	"jotdown/internal/domain/repositories"
	"jotdown/internal/domain/services"
)

// reviewPrompt frames a note for the study-assistant review
const reviewPrompt = `You are a study assistant. Analyze the following note and provide a structured review:

NOTE CONTENT:
%q

OUTPUT FORMAT:
Please provide the response in these 4 distinct sections:
1. **Summary**: A concise summary of the note.
2. **Missing Concepts**: 2-3 key concepts that are relevant but missing from the note.
3. **Quiz Question**: A single multiple-choice question to test understanding.
4. **Related Topics**: List 3 related topics the user should study next.

Keep the tone helpful and encouraging.`

type summaryService struct {
	docRepo    repositories.DocumentRepository
	summarizer services.Summarizer
	logger     *slog.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	docRepo repositories.DocumentRepository,
	summarizer services.Summarizer,
	logger *slog.Logger,
) services.SummaryService {
	return &summaryService{
		docRepo:    docRepo,
		summarizer: summarizer,
		logger:     logger,
	}
}

// ReviewDocument produces an AI study review of a document's text
func (s *summaryService) ReviewDocument(ctx context.Context, docID int64) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(doc.Text) == "" {
		return "", fmt.Errorf("document %d has no text to review: %w", docID, domain.ErrValidation)
	}

	review, err := s.summarizer.Summarize(ctx, fmt.Sprintf(reviewPrompt, doc.Text))
	if err != nil {
		return "", fmt.Errorf("summarize document %d: %w", docID, err)
	}

	s.logger.Info("document reviewed", "id", docID, "review_chars", len(review))
	return review, nil
}
