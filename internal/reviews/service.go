package reviews

import (
	"context"
	"log/slog"
)

type service struct {
	validator *Validator
	generator Generator
	repo      Repo
	log       *slog.Logger
}

func NewService(repo Repo, generator Generator, log *slog.Logger) Service {
	return &service{
		validator: NewValidator(),
		generator: generator,
		repo:      repo,
		log:       log.With("component", "reviews"),
	}
}

// Generate validates, drafts a reply and stores the exchange. Nothing is
// stored unless generation succeeds.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (Exchange, error) {
	if err := s.validator.Validate(req); err != nil {
		return Exchange{}, err
	}

	s.log.InfoContext(ctx, "generating reply", "tone", req.Tone, "text_len", len([]rune(req.Text)))

	reply, err := s.generator.Generate(ctx, req)
	if err != nil {
		return Exchange{}, err
	}

	ex, err := s.repo.Create(ctx, req.Text, reply, req.Tone)
	if err != nil {
		return Exchange{}, err
	}

	s.log.InfoContext(ctx, "exchange stored", "id", ex.ID, "tone", ex.Tone)
	return ex, nil
}

func (s *service) List(ctx context.Context) ([]Exchange, error) {
	return s.repo.List(ctx)
}
