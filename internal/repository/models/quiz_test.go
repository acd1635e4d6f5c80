package models

import (
	"testing"

	"notesquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionListValue(t *testing.T) {
	t.Run("nil becomes empty JSON array", func(t *testing.T) {
		var q QuestionList
		v, err := q.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("questions marshal to JSON string", func(t *testing.T) {
		q := QuestionList{{ID: "q-1", Question: "Which?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}}
		v, err := q.Value()
		require.NoError(t, err)
		assert.Contains(t, v.(string), `"q-1"`)
		assert.Contains(t, v.(string), `"correct_index":2`)
	})
}

func TestQuestionListScan(t *testing.T) {
	payload := `[{"id":"q-1","question":"Which?","options":["a","b","c","d"],"correct_index":1}]`

	t.Run("from string", func(t *testing.T) {
		var q QuestionList
		require.NoError(t, q.Scan(payload))
		require.Len(t, q, 1)
		assert.Equal(t, "q-1", q[0].ID)
		assert.Equal(t, 1, q[0].CorrectIndex)
	})

	t.Run("from bytes", func(t *testing.T) {
		var q QuestionList
		require.NoError(t, q.Scan([]byte(payload)))
		require.Len(t, q, 1)
	})

	t.Run("nil and null reset to empty", func(t *testing.T) {
		var q QuestionList
		require.NoError(t, q.Scan(nil))
		assert.Empty(t, q)
		require.NoError(t, q.Scan("null"))
		assert.Empty(t, q)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var q QuestionList
		assert.Error(t, q.Scan(42))
	})
}

func TestQuizModelRoundTrip(t *testing.T) {
	quiz := &domain.Quiz{
		ID:              "quiz-abc123def456",
		Title:           "Quiz: Gravity & Mass",
		CreatedAt:       "2011-03-04T05:06:07Z",
		SourceNotesHash: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		Questions: []domain.Question{
			{ID: "q-1", Question: "Which?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		},
	}

	assert.Equal(t, quiz, FromDomain(quiz).ToDomain())
}
