package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"notesquiz/internal/domain"
)

// QuestionList stores a quiz's questions as a JSON document in a TEXT column.
type QuestionList []domain.Question

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuestionList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*q = QuestionList{}
		return nil
	}
	return json.Unmarshal(bytesToParse, q)
}

// Quiz is the database row model for a stored quiz.
type Quiz struct {
	ID              string       `db:"id"`
	Title           string       `db:"title"`
	CreatedAt       string       `db:"created_at"`
	SourceNotesHash string       `db:"source_notes_hash"`
	Questions       QuestionList `db:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// ToDomain converts the row model into the domain type.
func (q *Quiz) ToDomain() *domain.Quiz {
	return &domain.Quiz{
		ID:              q.ID,
		Title:           q.Title,
		CreatedAt:       q.CreatedAt,
		SourceNotesHash: q.SourceNotesHash,
		Questions:       []domain.Question(q.Questions),
	}
}

// FromDomain converts a domain quiz into the row model.
func FromDomain(quiz *domain.Quiz) *Quiz {
	return &Quiz{
		ID:              quiz.ID,
		Title:           quiz.Title,
		CreatedAt:       quiz.CreatedAt,
		SourceNotesHash: quiz.SourceNotesHash,
		Questions:       QuestionList(quiz.Questions),
	}
}
