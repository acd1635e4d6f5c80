package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notesquiz/internal/domain"
	"notesquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS quizzes (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	created_at TEXT NOT NULL,
	source_notes_hash TEXT NOT NULL,
	questions TEXT NOT NULL DEFAULT '[]'
);`

// SQLiteQuizStore is a SQLite-backed implementation of domain.QuizRepository.
type SQLiteQuizStore struct {
	db *sqlx.DB
}

// NewSQLiteQuizStore opens (or creates) the database at dbPath and ensures
// the schema exists.
func NewSQLiteQuizStore(dbPath string) (*SQLiteQuizStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &SQLiteQuizStore{db: db}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewSQLiteQuizStoreWithDB wraps an existing connection; used by tests.
func NewSQLiteQuizStoreWithDB(db *sqlx.DB) *SQLiteQuizStore {
	return &SQLiteQuizStore{db: db}
}

// Close releases the underlying connection.
func (s *SQLiteQuizStore) Close() error {
	return s.db.Close()
}

// FindByID returns the stored quiz with the given id, or (nil, nil) when absent.
func (s *SQLiteQuizStore) FindByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var row models.Quiz
	err := s.db.GetContext(ctx, &row,
		`SELECT id, title, created_at, source_notes_hash, questions FROM quizzes WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("failed to query quiz", err)
	}
	return row.ToDomain(), nil
}

// Append stores a new quiz; an existing id is left untouched (the record is
// immutable and identical by construction).
func (s *SQLiteQuizStore) Append(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil || quiz.ID == "" {
		return domain.NewInvalidInputError("quiz must have an id")
	}
	row := models.FromDomain(quiz)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, created_at, source_notes_hash, questions)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		row.ID, row.Title, row.CreatedAt, row.SourceNotesHash, row.Questions)
	if err != nil {
		return domain.NewStorageError("failed to insert quiz", err)
	}
	return nil
}

// ListAll returns all stored quizzes in insertion order.
func (s *SQLiteQuizStore) ListAll(ctx context.Context) ([]*domain.Quiz, error) {
	var rows []models.Quiz
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, title, created_at, source_notes_hash, questions FROM quizzes ORDER BY rowid`)
	if err != nil {
		return nil, domain.NewStorageError("failed to list quizzes", err)
	}
	quizzes := make([]*domain.Quiz, len(rows))
	for i := range rows {
		quizzes[i] = rows[i].ToDomain()
	}
	return quizzes, nil
}
