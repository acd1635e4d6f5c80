package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		objectType string
		identifier string
		params     []string
		want       string
	}{
		{
			name:       "basic key",
			service:    "quiz",
			objectType: "record",
			identifier: "quiz-abc123def456",
			want:       "notesquiz:quiz:record:quiz-abc123def456",
		},
		{
			name:       "with params",
			service:    "quiz",
			objectType: "list",
			identifier: "all",
			params:     []string{"page1", "size20"},
			want:       "notesquiz:quiz:list:all:page1_size20",
		},
		{
			name:       "single param",
			service:    "quiz",
			objectType: "record",
			identifier: "quiz-abc",
			params:     []string{"v2"},
			want:       "notesquiz:quiz:record:quiz-abc:v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.service, tt.objectType, tt.identifier, tt.params...)
			assert.Equal(t, tt.want, got)
		})
	}
}
