package mocktest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

// Repository persists the whole list of tests at once. Implementations do not
// serialise concurrent writers: the last SaveAll wins.
type Repository interface {
	Load(ctx context.Context) ([]TestRecord, error)
	SaveAll(ctx context.Context, tests []TestRecord) error
}

type fileRepository struct {
	path string
}

// NewFileRepository stores every test as one JSON array in path.
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

// Load returns an empty list when the file cannot be read or does not hold a
// JSON array of tests.
func (r *fileRepository) Load(ctx context.Context) ([]TestRecord, error) {
	log := config.WithContext(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []TestRecord{}, nil
		}
		log.WithError(err).WithField("path", r.path).Warn("Test store is unreadable, starting from an empty list")
		return []TestRecord{}, nil
	}

	var tests []TestRecord
	if err := json.Unmarshal(data, &tests); err != nil {
		log.WithError(err).WithField("path", r.path).Warn("Test store is not valid JSON, starting from an empty list")
		return []TestRecord{}, nil
	}
	if tests == nil {
		tests = []TestRecord{}
	}
	return tests, nil
}

func (r *fileRepository) SaveAll(ctx context.Context, tests []TestRecord) error {
	if tests == nil {
		tests = []TestRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(tests); err != nil {
		return fmt.Errorf("failed to marshal tests: %w", err)
	}

	if err := os.WriteFile(r.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}

	config.WithContext(ctx).WithField("count", len(tests)).Debug("Test store written")
	return nil
}
