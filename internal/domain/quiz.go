package domain

// OptionsPerQuestion is the fixed number of answer options every question carries.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question inside a quiz.
// Options always holds exactly OptionsPerQuestion distinct, non-empty strings,
// and CorrectIndex points at the correct one.
type Question struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Quiz is an immutable quiz record. The id and all contents are derived
// deterministically from the source notes, so identical notes always
// reproduce the identical record. CreatedAt is a fingerprint timestamp
// derived from the notes hash, not a wall-clock time.
type Quiz struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	CreatedAt       string     `json:"created_at"`
	SourceNotesHash string     `json:"source_notes_hash"`
	Questions       []Question `json:"questions"`
}

// Validate checks the structural invariants of a generated quiz:
// 5..8 questions, 4 distinct non-empty options each, correct index in range.
func (q *Quiz) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("quiz id is empty")
	}
	if len(q.Questions) < 5 || len(q.Questions) > 8 {
		return NewValidationFailedError("questions", "quiz must contain between 5 and 8 questions")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the structural invariants of a single question.
func (q *Question) Validate() error {
	if len(q.Options) != OptionsPerQuestion {
		return NewValidationFailedError("options", "question must have exactly 4 options")
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return NewValidationFailedError("options", "question options must be non-empty")
		}
		if _, dup := seen[opt]; dup {
			return NewValidationFailedError("options", "question options must be distinct")
		}
		seen[opt] = struct{}{}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewValidationFailedError("correct_index", "correct index out of range")
	}
	return nil
}
