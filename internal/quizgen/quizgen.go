// Package quizgen turns free-text study notes into a deterministic
// multiple-choice quiz.
//
// Every "random" decision (candidate selection, distractor sampling, option
// shuffling) is driven by a generator seeded from the SHA-256 hash of the
// trimmed notes, so identical notes always reproduce the identical quiz:
// same id, title, timestamp, question text, option order and answer key.
// Generate is pure and allocates all of its state per call, so it is safe to
// invoke concurrently without synchronization.
package quizgen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"notesquiz/internal/domain"
)

const (
	minQuestions = 5
	maxQuestions = 8

	// prompts longer than this are cut at 217 runes and ellipsis-terminated
	maxPromptSnippet = 220

	blankMarker = "_____"
)

// Generate builds a quiz from the given notes. The title, when non-empty
// after trimming, is used as-is; otherwise one is derived from the two most
// frequent terms. Returns an INVALID_INPUT domain error when the trimmed
// notes are empty; every other input produces a quiz.
func Generate(notes, title string) (*domain.Quiz, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, domain.NewInvalidInputError("notes must not be empty")
	}

	srcHash := stableHash(notes)
	rng := NewRand(seedFromHash(srcHash))

	sentences := splitSentences(notes)
	candidates := collectCandidates(sentences)

	// The question count is decided before any fallback kicks in: with no
	// real candidates the quiz gets the minimum five questions.
	numQuestions := minQuestions
	if len(candidates) > 0 {
		desired := min(max(len(candidates), minQuestions), maxQuestions)
		numQuestions = max(minQuestions, min(desired, len(candidates)))
	} else {
		candidates = fallbackCandidates(notes)
	}

	allTerms := make([]string, 0, len(candidates))
	for _, c := range candidates {
		allTerms = append(allTerms, c.term)
	}
	allTerms = uniquePreserveOrder(allTerms)

	picked := make([]candidate, len(candidates))
	copy(picked, candidates)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > numQuestions {
		picked = picked[:numQuestions]
	}

	questions := make([]domain.Question, 0, len(picked))
	for i, cand := range picked {
		idx := i + 1

		var support string
		switch {
		case len(cand.sentences) > 0:
			support = rng.Pick(cand.sentences)
		case len(sentences) > 0:
			support = rng.Pick(sentences)
		default:
			support = notes
		}

		// Alternate question styles for variety.
		var prompt string
		if idx%2 == 1 {
			prompt = makeFillInQuestion(cand.term, support)
		} else {
			prompt = makeDefinitionQuestion(support)
		}

		distractors := pickDistractors(allTerms, cand.term, rng, domain.OptionsPerQuestion-1)
		options, correctIndex := assembleOptions(cand.term, distractors, rng)

		questions = append(questions, domain.Question{
			ID:           fmt.Sprintf("q-%d", idx),
			Question:     prompt,
			Options:      options,
			CorrectIndex: correctIndex,
		})
	}

	return &domain.Quiz{
		ID:              "quiz-" + srcHash[:12],
		Title:           deriveTitle(title, candidates),
		CreatedAt:       fingerprintTimestamp(srcHash),
		SourceNotesHash: srcHash,
		Questions:       questions,
	}, nil
}

// stableHash returns the SHA-256 hex digest of the text.
func stableHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// seedFromHash interprets the first 16 hex chars of the digest as a 64-bit
// integer seed.
func seedFromHash(hexDigest string) uint64 {
	seed, err := strconv.ParseUint(hexDigest[:16], 16, 64)
	if err != nil {
		// unreachable for a hex digest, but keep the generator total
		return zeroSeedReplacement
	}
	return seed
}

// makeFillInQuestion blanks out whole-word occurrences of the term in the
// supporting sentence and wraps the result in the fill-in-the-blank template.
func makeFillInQuestion(term, sentence string) string {
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	blanked := truncateSnippet(pattern.ReplaceAllString(sentence, blankMarker))
	return fmt.Sprintf("In the context of the notes, which term best completes the blank: '%s'?", blanked)
}

// makeDefinitionQuestion wraps the supporting sentence in the
// definition-style template.
func makeDefinitionQuestion(sentence string) string {
	return fmt.Sprintf("Which term is most closely described by: '%s'?", truncateSnippet(strings.TrimSpace(sentence)))
}

func truncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= maxPromptSnippet {
		return s
	}
	head := strings.TrimRightFunc(string(runes[:maxPromptSnippet-3]), unicode.IsSpace)
	return head + "..."
}

// deriveTitle prefers the caller-supplied title; otherwise it builds one from
// the top two candidates by frequency.
func deriveTitle(title string, candidates []candidate) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if len(candidates) < 2 {
		return "Quiz: Study Notes"
	}
	return "Quiz: " + capitalize(candidates[0].term) + " & " + capitalize(candidates[1].term)
}

// fingerprintTimestamp derives a timestamp-shaped string from the first hash
// bytes. It is a content fingerprint, not a wall-clock creation time.
func fingerprintTimestamp(hexDigest string) string {
	b, err := hex.DecodeString(hexDigest[:16])
	if err != nil || len(b) < 6 {
		b = make([]byte, 6)
	}
	year := 2000 + int(b[0])%30
	month := 1 + int(b[1])%12
	day := 1 + int(b[2])%28
	hour := int(b[3]) % 24
	minute := int(b[4]) % 60
	second := int(b[5]) % 60
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, hour, minute, second)
}
