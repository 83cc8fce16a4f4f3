package mocktest

import (
	"context"
	"sort"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

type Service interface {
	ListTests(ctx context.Context) ([]TestRecord, error)
	CreateTest(ctx context.Context, test TestRecord) error
	DeleteTest(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListTests returns the newest tests first, comparing createdAt as plain
// strings. Ties keep their stored order.
func (s *service) ListTests(ctx context.Context) ([]TestRecord, error) {
	log := config.WithContext(ctx)

	tests, err := s.repo.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load tests")
		return nil, err
	}

	sort.SliceStable(tests, func(i, j int) bool {
		return tests[i].CreatedAt > tests[j].CreatedAt
	})
	return tests, nil
}

func (s *service) CreateTest(ctx context.Context, test TestRecord) error {
	log := config.WithContext(ctx).WithField("test_id", test.ID)

	tests, err := s.repo.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load tests")
		return err
	}

	for _, existing := range tests {
		if existing.ID == test.ID {
			log.Warn("Saving a test whose id already exists")
			break
		}
	}

	if test.Questions == nil {
		test.Questions = []QuestionRecord{}
	}
	tests = append(tests, test)

	if err := s.repo.SaveAll(ctx, tests); err != nil {
		log.WithError(err).Error("Failed to save tests")
		return err
	}

	log.Info("Test saved")
	return nil
}

// DeleteTest removes every test carrying id.
func (s *service) DeleteTest(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("test_id", id)

	tests, err := s.repo.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load tests")
		return err
	}

	kept := make([]TestRecord, 0, len(tests))
	for _, t := range tests {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tests) {
		log.Warn("Test not found")
		return ErrTestNotFound
	}

	if err := s.repo.SaveAll(ctx, kept); err != nil {
		log.WithError(err).Error("Failed to save tests")
		return err
	}

	log.WithField("removed", len(tests)-len(kept)).Info("Test deleted")
	return nil
}
