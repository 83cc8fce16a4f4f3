package mocktest

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// mockTestRow keeps list order in Seq; test ids may repeat, so they are not a key.
type mockTestRow struct {
	Seq       int            `gorm:"primaryKey;autoIncrement:false"`
	TestID    string         `gorm:"column:test_id;type:text;not null;index"`
	Title     string         `gorm:"type:text;not null"`
	Duration  int            `gorm:"not null"`
	Questions datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt string         `gorm:"column:created_at;type:text;not null"`
}

func (mockTestRow) TableName() string {
	return "mock_tests"
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository keeps the same whole-list semantics as the file store:
// SaveAll replaces every row in one transaction.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&mockTestRow{})
}

func (r *gormRepository) Load(ctx context.Context) ([]TestRecord, error) {
	var rows []mockTestRow
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	tests := make([]TestRecord, 0, len(rows))
	for _, row := range rows {
		var questions []QuestionRecord
		if len(row.Questions) > 0 {
			if err := json.Unmarshal(row.Questions, &questions); err != nil {
				return nil, fmt.Errorf("failed to decode questions of test %s: %w", row.TestID, err)
			}
		}
		if questions == nil {
			questions = []QuestionRecord{}
		}
		tests = append(tests, TestRecord{
			ID:        row.TestID,
			Title:     row.Title,
			Duration:  row.Duration,
			Questions: questions,
			CreatedAt: row.CreatedAt,
		})
	}
	return tests, nil
}

func (r *gormRepository) SaveAll(ctx context.Context, tests []TestRecord) error {
	rows := make([]mockTestRow, 0, len(tests))
	for i, t := range tests {
		questions := t.Questions
		if questions == nil {
			questions = []QuestionRecord{}
		}
		raw, err := json.Marshal(questions)
		if err != nil {
			return fmt.Errorf("failed to encode questions of test %s: %w", t.ID, err)
		}
		rows = append(rows, mockTestRow{
			Seq:       i,
			TestID:    t.ID,
			Title:     t.Title,
			Duration:  t.Duration,
			Questions: datatypes.JSON(raw),
			CreatedAt: t.CreatedAt,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&mockTestRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
