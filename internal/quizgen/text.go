package quizgen

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A compact English stopword list to improve keyword extraction without
// pulling in an NLP dependency.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {}, "while": {}, "as": {}, "of": {},
	"in": {}, "on": {}, "for": {}, "to": {}, "from": {}, "by": {},
	"with": {}, "without": {}, "at": {}, "about": {}, "into": {}, "over": {}, "after": {}, "before": {},
	"between": {}, "through": {}, "during": {}, "above": {},
	"below": {}, "up": {}, "down": {}, "out": {}, "off": {}, "again": {}, "further": {}, "then": {}, "once": {},
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"do": {}, "does": {}, "did": {}, "doing": {},
	"have": {}, "has": {}, "had": {}, "having": {},
	"he": {}, "she": {}, "it": {}, "they": {}, "them": {}, "his": {}, "her": {}, "its": {}, "their": {},
	"theirs": {}, "you": {}, "your": {}, "yours": {}, "i": {}, "we": {}, "our": {}, "ours": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "there": {}, "here": {}, "such": {},
	"can": {}, "could": {}, "should": {}, "would": {}, "may": {}, "might": {}, "must": {}, "will": {}, "shall": {},
	"not": {}, "no": {}, "nor": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "where": {}, "when": {}, "why": {}, "how": {},
}

var tokenPattern = regexp.MustCompile(`[A-Za-z]+`)

// candidate is a term extracted from the notes together with its occurrence
// frequency and up to three distinct sentences it appears in. Candidates only
// live for the duration of one Generate call.
type candidate struct {
	term      string
	freq      int
	sentences []string
}

const maxExampleSentences = 3

// splitSentences splits text on sentence-ending punctuation (. ! ?) followed
// by whitespace. Fragments that are empty or contain no alphanumeric
// character are dropped.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var parts []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		next, width := utf8.DecodeRuneInString(text[i+1:])
		if width == 0 || !unicode.IsSpace(next) {
			continue
		}
		parts = append(parts, text[start:i+1])
		// skip the whitespace run following the boundary
		j := i + 1
		for j < len(text) {
			r, w := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += w
		}
		start = j
		i = j - 1
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" && containsAlnum(s) {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func containsAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// tokenizeAlpha extracts maximal runs of ASCII alphabetic characters,
// lowercased. Digits and punctuation act purely as separators.
func tokenizeAlpha(text string) []string {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, len(matches))
	for i, m := range matches {
		tokens[i] = strings.ToLower(m)
	}
	return tokens
}

func isCandidateToken(t string) bool {
	if len(t) <= 2 {
		return false
	}
	_, stop := stopwords[t]
	return !stop
}

// collectCandidates tallies term frequencies across all sentences and records
// up to three distinct example sentences per term. The result is sorted by
// descending frequency, then ascending term, which is a total order and keeps
// the output independent of map iteration.
func collectCandidates(sentences []string) []candidate {
	freq := make(map[string]int)
	examples := make(map[string][]string)
	for _, sent := range sentences {
		for _, t := range tokenizeAlpha(sent) {
			if !isCandidateToken(t) {
				continue
			}
			freq[t]++
			if len(examples[t]) < maxExampleSentences && !slices.Contains(examples[t], sent) {
				examples[t] = append(examples[t], sent)
			}
		}
	}

	candidates := make([]candidate, 0, len(freq))
	for term, f := range freq {
		candidates = append(candidates, candidate{term: term, freq: f, sentences: examples[term]})
	}
	sortCandidates(candidates)
	return candidates
}

func sortCandidates(candidates []candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].freq != candidates[j].freq {
			return candidates[i].freq > candidates[j].freq
		}
		return candidates[i].term < candidates[j].term
	})
}

const fallbackCandidateLimit = 12

// fallbackCandidates fabricates candidates when sentence-based extraction
// found nothing: first from tokens of the whole notes, and if even that is
// empty, from generic placeholder terms. Every fallback candidate uses the
// entire notes text as its sole example sentence.
func fallbackCandidates(notes string) []candidate {
	var tokens []string
	for _, t := range tokenizeAlpha(notes) {
		if isCandidateToken(t) {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		for i := 1; i <= 11; i++ {
			tokens = append(tokens, fmt.Sprintf("Concept%d", i))
		}
	}

	freq := make(map[string]int)
	for _, t := range tokens {
		freq[t]++
	}
	candidates := make([]candidate, 0, len(freq))
	for term, f := range freq {
		candidates = append(candidates, candidate{term: term, freq: f, sentences: []string{notes}})
	}
	sortCandidates(candidates)
	if len(candidates) > fallbackCandidateLimit {
		candidates = candidates[:fallbackCandidateLimit]
	}
	return candidates
}
