package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOption(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello   world  ", "hello world"},
		{"...term...", "term"},
		{"(parens)", "parens"},
		{"plain", "plain"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizeOption(tt.input), "input %q", tt.input)
	}
}

func TestUniquePreserveOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"b", "a", "c"},
		uniquePreserveOrder([]string{"b", "a", "b", "c", "a"}),
	)
}

func TestReverseString(t *testing.T) {
	assert.Equal(t, "sisomso", reverseString("osmosis"))
	assert.Equal(t, "", reverseString(""))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Mitochondria", capitalize("mitochondria"))
	assert.Equal(t, "Atp", capitalize("ATP"))
	assert.Equal(t, "", capitalize(""))
}

func TestPickDistractorsLargePool(t *testing.T) {
	allTerms := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	distractors := pickDistractors(allTerms, "alpha", NewRand(11), 3)

	assert.Len(t, distractors, 3)
	for _, d := range distractors {
		assert.NotEqual(t, "alpha", d)
		assert.Contains(t, allTerms, d)
	}
}

func TestPickDistractorsShortPool(t *testing.T) {
	// one real alternative only, the rest must be synthesized
	distractors := pickDistractors([]string{"photosynthesis", "chlorophyll"}, "photosynthesis", NewRand(3), 3)

	assert.Len(t, distractors, 3)
	seen := make(map[string]struct{})
	for _, d := range distractors {
		assert.NotEqual(t, "photosynthesis", d)
		assert.NotEmpty(t, d)
		seen[d] = struct{}{}
	}
	assert.Len(t, seen, 3, "distractors must be distinct")
}

func TestPickDistractorsShortTerm(t *testing.T) {
	// terms of length <= 3 use numeric/alphabetic suffixes instead of reversal
	distractors := pickDistractors([]string{"atp"}, "atp", NewRand(8), 3)

	assert.Len(t, distractors, 3)
	for _, d := range distractors {
		assert.NotEqual(t, "atp", d)
	}
}

func TestPickDistractorsDeterministic(t *testing.T) {
	allTerms := []string{"one", "two", "three", "four"}
	first := pickDistractors(allTerms, "one", NewRand(55), 3)
	second := pickDistractors(allTerms, "one", NewRand(55), 3)
	assert.Equal(t, first, second)
}

func TestAssembleOptions(t *testing.T) {
	rng := NewRand(21)
	options, correctIndex := assembleOptions("mitosis", []string{"meiosis", "cytokinesis", "interphase"}, rng)

	assert.Len(t, options, 4)
	assert.GreaterOrEqual(t, correctIndex, 0)
	assert.Less(t, correctIndex, 4)
	assert.Equal(t, "mitosis", options[correctIndex])

	seen := make(map[string]struct{})
	for _, o := range options {
		assert.NotEmpty(t, o)
		seen[o] = struct{}{}
	}
	assert.Len(t, seen, 4, "options must be distinct")
}

func TestAssembleOptionsDuplicateDistractors(t *testing.T) {
	// duplicates collapse and synthetic variants fill the gap
	options, correctIndex := assembleOptions("enzyme", []string{"enzyme", "enzyme", "protein"}, NewRand(2))

	assert.Len(t, options, 4)
	assert.Equal(t, "enzyme", options[correctIndex])
	seen := make(map[string]struct{})
	for _, o := range options {
		assert.NotEmpty(t, o)
		seen[o] = struct{}{}
	}
	assert.Len(t, seen, 4)
}

func TestAssembleOptionsDeterministic(t *testing.T) {
	distractors := []string{"a1", "b2", "c3"}
	firstOpts, firstIdx := assembleOptions("term", distractors, NewRand(77))
	secondOpts, secondIdx := assembleOptions("term", distractors, NewRand(77))

	assert.Equal(t, firstOpts, secondOpts)
	assert.Equal(t, firstIdx, secondIdx)
}
