package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"notesquiz/internal/domain"
	"notesquiz/internal/logger"

	"go.uber.org/zap"
)

// quizFile is the on-disk shape of the JSON store.
type quizFile struct {
	Quizzes []*domain.Quiz `json:"quizzes"`
}

// JSONQuizStore is a single-file JSON implementation of domain.QuizRepository.
// Every write rewrites the whole file through a temp file and an atomic
// rename, so readers never observe a partially written document. A corrupted
// or mis-shapen file is reset to the empty default instead of failing the
// service. A mutex serializes writers; records are append-only.
type JSONQuizStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONQuizStore initializes the store at the given path and ensures the
// parent directory exists.
func NewJSONQuizStore(path string) (*JSONQuizStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &JSONQuizStore{path: abs}, nil
}

// Path returns the absolute path of the data file.
func (s *JSONQuizStore) Path() string {
	return s.path
}

// FindByID returns the stored quiz with the given id, or (nil, nil) when absent.
func (s *JSONQuizStore) FindByID(ctx context.Context, id string) (*domain.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	for _, q := range data.Quizzes {
		if q != nil && q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

// Append stores a new quiz. Appending an id that already exists is a no-op:
// identical notes deterministically reproduce the identical record, so the
// duplicate write carries no new information.
func (s *JSONQuizStore) Append(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil || quiz.ID == "" {
		return domain.NewInvalidInputError("quiz must have an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.loadLocked()
	if err != nil {
		return err
	}
	for _, q := range data.Quizzes {
		if q != nil && q.ID == quiz.ID {
			return nil
		}
	}
	data.Quizzes = append(data.Quizzes, quiz)
	return s.writeLocked(data)
}

// ListAll returns all stored quizzes in insertion order.
func (s *JSONQuizStore) ListAll(ctx context.Context) ([]*domain.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Quiz, len(data.Quizzes))
	copy(out, data.Quizzes)
	return out, nil
}

// loadLocked reads the data file, creating it with the empty default on first
// touch and resetting it when the content cannot be decoded.
func (s *JSONQuizStore) loadLocked() (*quizFile, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		data := &quizFile{Quizzes: []*domain.Quiz{}}
		if werr := s.writeLocked(data); werr != nil {
			return nil, werr
		}
		return data, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("failed to read quiz data file", err)
	}

	var data quizFile
	if err := json.Unmarshal(raw, &data); err != nil || data.Quizzes == nil {
		// Corrupted store: reset to the empty default to keep the service
		// functioning rather than refusing every request.
		logger.Get().Warn("quiz data file is malformed, resetting to empty store",
			zap.String("path", s.path),
			zap.Error(err),
		)
		data = quizFile{Quizzes: []*domain.Quiz{}}
		if werr := s.writeLocked(&data); werr != nil {
			return nil, werr
		}
	}
	return &data, nil
}

// writeLocked writes the document to a temp file in the same directory,
// fsyncs it and atomically replaces the target.
func (s *JSONQuizStore) writeLocked(data *quizFile) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".quizzes.*.tmp")
	if err != nil {
		return domain.NewStorageError("failed to create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		tmp.Close()
		return domain.NewStorageError("failed to encode quiz data", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return domain.NewStorageError("failed to sync quiz data", err)
	}
	if err := tmp.Close(); err != nil {
		return domain.NewStorageError("failed to close temp file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return domain.NewStorageError("failed to replace quiz data file", err)
	}
	return nil
}
