package mocktest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTestNotFound = errors.New("test not found")
	ErrInvalidTest  = errors.New("invalid test")
)

type CreateTestDTO struct {
	ID        *string           `json:"id"`
	Title     *string           `json:"title"`
	Duration  *int              `json:"duration"`
	Questions *[]QuestionRecord `json:"questions"`
	CreatedAt *string           `json:"createdAt"`
}

func (d CreateTestDTO) ToRecord() (TestRecord, error) {
	var missing []string
	if d.ID == nil {
		missing = append(missing, "id")
	}
	if d.Title == nil {
		missing = append(missing, "title")
	}
	if d.Duration == nil {
		missing = append(missing, "duration")
	}
	if d.Questions == nil {
		missing = append(missing, "questions")
	}
	if d.CreatedAt == nil {
		missing = append(missing, "createdAt")
	}
	if len(missing) > 0 {
		return TestRecord{}, fmt.Errorf("%w: missing field(s) %s", ErrInvalidTest, strings.Join(missing, ", "))
	}

	questions := *d.Questions
	for i, q := range questions {
		if q == nil {
			return TestRecord{}, fmt.Errorf("%w: questions[%d] must be an object", ErrInvalidTest, i)
		}
	}

	return TestRecord{
		ID:        *d.ID,
		Title:     *d.Title,
		Duration:  *d.Duration,
		Questions: questions,
		CreatedAt: *d.CreatedAt,
	}, nil
}

type CreateTestResponse struct {
	Status string `json:"status"`
	TestID string `json:"test_id"`
}

type DeleteTestResponse struct {
	Status    string `json:"status"`
	DeletedID string `json:"deleted_id"`
}
