package matcher

import (
	"github.com/wordart/wordle-art/internal/pattern"
)

// Matcher decides whether a candidate word, guessed against a fixed solution,
// would produce a given green/non-green row under Wordle's feedback rules.
// Repeated letters follow the real game's multiset accounting: each solution
// letter occurrence can justify at most one green or yellow tile, and greens
// consume occurrences before yellows are considered.
type Matcher struct {
	solution string
	counts   [26]int
}

// New creates a Matcher for a solution word. The solution must be lowercase
// a-z and exactly pattern.WordLength letters; main validates this at startup.
func New(solution string) *Matcher {
	m := &Matcher{solution: solution}
	for i := 0; i < len(solution); i++ {
		m.counts[idx(solution[i])]++
	}
	return m
}

// Solution returns the solution word this matcher scores against
func (m *Matcher) Solution() string {
	return m.solution
}

// Matches reports whether guessing candidate against the solution produces
// exactly the green layout demanded by row.
//
// First pass: a position is green iff the candidate letter equals the solution
// letter. Any disagreement with the demanded row fails immediately, and each
// green consumes one occurrence of its letter from the solution multiset.
//
// Second pass: at every non-green position, the candidate letter must have no
// unconsumed occurrence left in the solution, otherwise the real game would
// render a yellow tile there and spoil the art.
func (m *Matcher) Matches(candidate string, row pattern.Row) bool {
	counts := m.counts

	for i := 0; i < pattern.WordLength; i++ {
		green := candidate[i] == m.solution[i]
		if green != row[i] {
			return false
		}
		if green {
			counts[idx(candidate[i])]--
		}
	}

	for i := 0; i < pattern.WordLength; i++ {
		if row[i] {
			continue
		}
		if counts[idx(candidate[i])] > 0 {
			return false
		}
	}

	return true
}

// idx maps a lowercase ASCII letter to 0..25
func idx(b byte) int { return int(b - 'a') }

// IsWord checks that a string is exactly pattern.WordLength lowercase
// ASCII letters
func IsWord(s string) bool {
	if len(s) != pattern.WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
