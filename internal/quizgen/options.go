package quizgen

import (
	"slices"
	"strings"
	"unicode"
)

var (
	suffixVariants         = []string{"", "s", "ed", "ing"}
	extendedSuffixVariants = []string{"", "s", "ed", "ing", "ity", "ness"}
	shortTermSuffixes      = []string{"1", "2", "3", "x"}
)

// optionPunctuation mirrors the ASCII punctuation set stripped from option edges.
const optionPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

// pickDistractors picks n distinct distractors for the correct term from the
// pool of all extracted terms. Short pools are topped up with synthetic
// variants of the correct term (reversal, suffixing, capitalization; numeric
// suffixes for very short terms). Variants accumulate in insertion order so
// the outcome depends only on the seeded generator.
func pickDistractors(allTerms []string, correct string, rng *Rand, n int) []string {
	pool := make([]string, 0, len(allTerms))
	for _, t := range allTerms {
		if t != correct {
			pool = append(pool, t)
		}
	}

	if len(pool) < n {
		variants := slices.Clone(pool)
		seen := make(map[string]struct{}, len(pool))
		for _, t := range pool {
			seen[t] = struct{}{}
		}
		add := func(v string) {
			// the empty suffix variant reproduces the correct term; the
			// pool must never contain it
			if v == correct {
				return
			}
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				variants = append(variants, v)
			}
		}
		for len(variants) < len(pool)+n {
			if len(correct) > 3 {
				add(reverseString(correct))
				add(correct + rng.Pick(suffixVariants))
				add(capitalize(correct))
			} else {
				add(correct + rng.Pick(shortTermSuffixes))
			}
			// iteration cap to guarantee termination
			if len(variants) > 10*n {
				break
			}
		}
		pool = variants
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// assembleOptions builds the final 4-option list for a question and returns
// the shuffled options together with the index of the correct term. The
// correct term is always placed first before sanitizing and deduplicating, so
// it survives to the shuffle; if it still cannot be located afterwards the
// index defaults to 0.
func assembleOptions(correct string, distractors []string, rng *Rand) ([]string, int) {
	raw := append([]string{correct}, distractors...)
	options := make([]string, 0, len(raw))
	for _, o := range raw {
		if strings.TrimSpace(o) == "" {
			continue
		}
		options = append(options, sanitizeOption(o))
	}

	for len(options) < 4 {
		options = append(options, sanitizeOption(correct+rng.Pick(suffixVariants)))
	}
	options = options[:4]

	options = uniquePreserveOrder(options)
	for len(options) < 4 {
		synth := correct + rng.Pick(extendedSuffixVariants)
		if !slices.Contains(options, synth) {
			options = append(options, synth)
		}
	}

	indices := make([]int, len(options))
	for i := range indices {
		indices[i] = i
	}
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	shuffled := make([]string, len(options))
	for i, idx := range indices {
		shuffled[i] = options[idx]
	}

	correctIndex := 0
	for i, o := range shuffled {
		if o == correct {
			correctIndex = i
			break
		}
	}
	return shuffled, correctIndex
}

// sanitizeOption collapses internal whitespace and strips surrounding
// punctuation and spaces.
func sanitizeOption(text string) string {
	t := strings.Join(strings.Fields(text), " ")
	return strings.Trim(t, optionPunctuation)
}

func uniquePreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
