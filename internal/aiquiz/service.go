package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

type Service interface {
	GeneratePaper(ctx context.Context, req PaperRequest) (map[string]any, error)
	ParseText(ctx context.Context, req ParseRequest) (any, error)
	GenerateSimilar(ctx context.Context, req SimilarRequest) (any, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GeneratePaper(ctx context.Context, req PaperRequest) (map[string]any, error) {
	log := config.WithContext(ctx).WithField("exam", req.ExamName)

	result, err := s.provider.SendPrompt(ctx, BuildPaperPrompt(req))
	if err != nil {
		return nil, err
	}

	paper, err := ValidatePaper(result)
	if err != nil {
		log.WithError(err).Warn("[AIQUIZ] Generated paper rejected")
		return nil, err
	}

	if warnings, ok := paper["warnings"].([]AnswerIndexWarning); ok {
		log.WithField("warnings", len(warnings)).Warn("[AIQUIZ] Generated paper has answer index warnings")
	}
	return paper, nil
}

// ParseText returns the model output as is; only generated papers are validated.
func (s *service) ParseText(ctx context.Context, req ParseRequest) (any, error) {
	if req.Text == nil {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidArgument)
	}
	return s.provider.SendPrompt(ctx, BuildParsePrompt(*req.Text))
}

// GenerateSimilar returns the model output as is.
func (s *service) GenerateSimilar(ctx context.Context, req SimilarRequest) (any, error) {
	questions, err := DecodeQuestionList(req.Questions)
	if err != nil {
		return nil, err
	}

	prompt, err := BuildSimilarPrompt(questions)
	if err != nil {
		return nil, err
	}
	return s.provider.SendPrompt(ctx, prompt)
}
