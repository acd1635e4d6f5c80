package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"notesquiz/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLiteQuizStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteQuizStoreWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func questionListJSON(t *testing.T, questions []domain.Question) string {
	t.Helper()
	data, err := json.Marshal(questions)
	require.NoError(t, err)
	return string(data)
}

func TestSQLiteQuizStoreFindByID(t *testing.T) {
	store, mock := newMockStore(t)
	quiz := testQuiz("quiz-abc123def456")

	rows := sqlmock.NewRows([]string{"id", "title", "created_at", "source_notes_hash", "questions"}).
		AddRow(quiz.ID, quiz.Title, quiz.CreatedAt, quiz.SourceNotesHash, questionListJSON(t, quiz.Questions))
	mock.ExpectQuery("SELECT (.+) FROM quizzes WHERE id =").
		WithArgs(quiz.ID).
		WillReturnRows(rows)

	got, err := store.FindByID(context.Background(), quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQuizStoreFindByIDMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM quizzes WHERE id =").
		WithArgs("quiz-missing").
		WillReturnError(sql.ErrNoRows)

	got, err := store.FindByID(context.Background(), "quiz-missing")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQuizStoreAppend(t *testing.T) {
	store, mock := newMockStore(t)
	quiz := testQuiz("quiz-abc123def456")

	mock.ExpectExec("INSERT INTO quizzes").
		WithArgs(quiz.ID, quiz.Title, quiz.CreatedAt, quiz.SourceNotesHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Append(context.Background(), quiz))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQuizStoreAppendConflictIsNoOp(t *testing.T) {
	store, mock := newMockStore(t)
	quiz := testQuiz("quiz-abc123def456")

	// ON CONFLICT DO NOTHING reports zero affected rows
	mock.ExpectExec("INSERT INTO quizzes").
		WithArgs(quiz.ID, quiz.Title, quiz.CreatedAt, quiz.SourceNotesHash, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Append(context.Background(), quiz))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteQuizStoreAppendRejectsEmptyID(t *testing.T) {
	store, _ := newMockStore(t)
	assert.Error(t, store.Append(context.Background(), &domain.Quiz{}))
}

func TestSQLiteQuizStoreListAll(t *testing.T) {
	store, mock := newMockStore(t)
	first := testQuiz("quiz-000000000001")
	second := testQuiz("quiz-000000000002")

	rows := sqlmock.NewRows([]string{"id", "title", "created_at", "source_notes_hash", "questions"}).
		AddRow(first.ID, first.Title, first.CreatedAt, first.SourceNotesHash, questionListJSON(t, first.Questions)).
		AddRow(second.ID, second.Title, second.CreatedAt, second.SourceNotesHash, questionListJSON(t, second.Questions))
	mock.ExpectQuery("SELECT (.+) FROM quizzes ORDER BY rowid").
		WillReturnRows(rows)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
