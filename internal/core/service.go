package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// PipelineService is the core classification-and-summarization pipeline.
// It feeds retrieved messages through normalization, type classification
// and, for articles, topic classification and summarization, then
// aggregates the results into sectioned output.
type PipelineService struct {
	source     MailSource
	store      ResultStore
	cleaner    TextCleaner
	types      TypeClassifier
	topics     TopicClassifier
	summarizer Summarizer
	logger     *zap.Logger
}

// NewPipelineService creates a new pipeline service.
func NewPipelineService(
	source MailSource,
	store ResultStore,
	cleaner TextCleaner,
	types TypeClassifier,
	topics TopicClassifier,
	summarizer Summarizer,
	logger *zap.Logger,
) *PipelineService {
	return &PipelineService{
		source:     source,
		store:      store,
		cleaner:    cleaner,
		types:      types,
		topics:     topics,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Process classifies a sequence of messages into sectioned output.
// Messages are handled one at a time in retrieval order; section and
// bucket ordering follows input ordering. An empty input yields a
// well-formed empty result, never an error.
func (s *PipelineService) Process(messages []RawMessage) *ProcessingResult {
	result := NewProcessingResult()

	for _, msg := range messages {
		body := s.cleaner.Clean(preferredContent(msg))
		emailType := s.types.Classify(msg.Subject, msg.Sender, body)

		if emailType == TypeArticle {
			article := s.buildArticle(msg)
			result.Sections.Articles = append(result.Sections.Articles, article)
			result.ArticleCategories[article.Category] = append(result.ArticleCategories[article.Category], article)
			continue
		}

		result.Sections.AppendRecord(ClassifiedRecord{
			ID:       msg.ID,
			Title:    msg.Subject,
			Sender:   msg.Sender,
			Date:     msg.Date,
			Snippet:  msg.Snippet,
			ThreadID: msg.ThreadID,
			Type:     emailType,
		})
	}

	result.Finalize()
	return result
}

// buildArticle derives the full article record: topic label, extractive
// summary and the cleaned body. Created once, never mutated afterwards.
func (s *PipelineService) buildArticle(msg RawMessage) ClassifiedArticle {
	clean := s.cleaner.Clean(msg.Subject + " " + preferredContent(msg))

	return ClassifiedArticle{
		ID:          msg.ID,
		Title:       msg.Subject,
		Sender:      msg.Sender,
		Date:        msg.Date,
		Category:    s.topics.Classify(clean),
		Summary:     s.summarizer.Summarize(clean),
		FullContent: clean,
		Snippet:     msg.Snippet,
		ThreadID:    msg.ThreadID,
	}
}

// Run retrieves messages from the mail source, processes them and
// persists the result, replacing any previous run's output. A message
// that cannot be fetched is skipped and appears nowhere in the result;
// a listing or persistence failure is a real error, distinct from a run
// that saw zero messages.
func (s *PipelineService) Run(ctx context.Context, query string, maxResults int) (*ProcessingResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("provider query must not be empty")
	}
	if maxResults < 0 {
		return nil, fmt.Errorf("max results must be non-negative, got %d", maxResults)
	}

	s.logger.Info("Fetching messages",
		zap.String("query", query),
		zap.Int("max_results", maxResults))

	ids, err := s.source.List(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]RawMessage, 0, len(ids))
	for _, id := range ids {
		msg, err := s.source.Fetch(ctx, id)
		if err != nil {
			s.logger.Warn("Skipping unretrievable message",
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		messages = append(messages, *msg)
	}

	result := s.Process(messages)

	if err := s.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to persist result: %w", err)
	}

	s.logger.Info("Pipeline run complete",
		zap.Int("listed", len(ids)),
		zap.Int("processed", result.Stats.TotalEmails),
		zap.Int("articles", result.Sections.Count(TypeArticle)),
		zap.Int("topics", len(result.Stats.ArticleCategoriesFound)))

	return result, nil
}

// preferredContent picks the plain-text body, falling back to the HTML
// body when the provider delivered no text part.
func preferredContent(msg RawMessage) string {
	if strings.TrimSpace(msg.Body) != "" {
		return msg.Body
	}
	return msg.HTMLBody
}
