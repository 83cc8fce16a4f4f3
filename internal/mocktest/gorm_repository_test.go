package mocktest

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormRepositoryLoad(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository(db)

	rows := sqlmock.NewRows([]string{"seq", "test_id", "title", "duration", "questions", "created_at"}).
		AddRow(0, "a", "First", 30, []byte(`[{"questionText":"Q1","options":["A","B","C","D"],"correctOptionIndex":2}]`), "2026-01-01").
		AddRow(1, "b", "Second", 45, []byte(`[]`), "2026-01-02")
	mock.ExpectQuery(`SELECT \* FROM "mock_tests" ORDER BY seq ASC`).WillReturnRows(rows)

	tests, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tests, 2)

	assert.Equal(t, "a", tests[0].ID)
	assert.Equal(t, 30, tests[0].Duration)
	require.Len(t, tests[0].Questions, 1)
	text, ok := tests[0].Questions[0].QuestionText()
	assert.True(t, ok)
	assert.Equal(t, "Q1", text)
	assert.Equal(t, "b", tests[1].ID)
	assert.Empty(t, tests[1].Questions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepositorySaveAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "mock_tests"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "mock_tests"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.SaveAll(context.Background(), []TestRecord{sampleTest("2026-01-01"), sampleTest("2026-01-02")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepositorySaveAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "mock_tests"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepositorySaveAllRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "mock_tests"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.SaveAll(context.Background(), []TestRecord{sampleTest("2026-01-01")})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
