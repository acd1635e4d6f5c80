package dto

import "notesquiz/internal/domain"

// CreateQuizRequest is the request body for generating a quiz from notes.
type CreateQuizRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

// QuestionResponse represents a single question in the API response
type QuestionResponse struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// QuizResponse represents a full quiz in the API response
type QuizResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	CreatedAt       string             `json:"created_at"`
	SourceNotesHash string             `json:"source_notes_hash"`
	Questions       []QuestionResponse `json:"questions"`
}

// QuizMetaResponse is the metadata view of a quiz used by listing endpoints
type QuizMetaResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CreatedAt     string `json:"created_at"`
	QuestionCount int    `json:"question_count"`
}

// QuizListResponse wraps the quiz metadata list
type QuizListResponse struct {
	Quizzes []QuizMetaResponse `json:"quizzes"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewQuizResponse maps a domain quiz onto its API representation.
func NewQuizResponse(quiz *domain.Quiz) *QuizResponse {
	questions := make([]QuestionResponse, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionResponse{
			ID:           q.ID,
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		}
	}
	return &QuizResponse{
		ID:              quiz.ID,
		Title:           quiz.Title,
		CreatedAt:       quiz.CreatedAt,
		SourceNotesHash: quiz.SourceNotesHash,
		Questions:       questions,
	}
}

// NewQuizMetaResponse maps a domain quiz onto its listing representation.
func NewQuizMetaResponse(quiz *domain.Quiz) QuizMetaResponse {
	return QuizMetaResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		CreatedAt:     quiz.CreatedAt,
		QuestionCount: len(quiz.Questions),
	}
}
