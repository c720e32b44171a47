package render

import (
	"math/rand"
	"strings"
	"time"
)

// NoSolution is emitted for a row whose candidate list is empty
const NoSolution = "[no solution]"

// Renderer turns per-row candidate lists into output text. It owns the only
// mutable state in the program after the search finishes: the RNG and the set
// of words already used in earlier rows.
type Renderer struct {
	rng  *rand.Rand
	used map[string]bool
}

// New creates a Renderer. A zero seed picks a time-based seed, so repeated
// runs produce different art; tests pass a fixed non-zero seed.
func New(seed int64) *Renderer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Renderer{
		rng:  rand.New(rand.NewSource(seed)),
		used: make(map[string]bool),
	}
}

// RenderExample picks one word per row by weighted random sampling and
// returns one uppercased line per row. Words already chosen for earlier rows
// are avoided as long as the row has any unused candidate; a row with no
// candidates at all renders the NoSolution sentinel.
//
// Rows must be rendered in order: the used-word rule makes later rows depend
// on earlier picks.
func (r *Renderer) RenderExample(answer [][]string) []string {
	lines := make([]string, 0, len(answer))

	for _, candidates := range answer {
		pool := r.unused(candidates)
		if len(pool) == 0 {
			pool = candidates
		}

		word, ok := r.pickWeighted(pool)
		if !ok {
			lines = append(lines, NoSolution)
			continue
		}

		r.used[word] = true
		lines = append(lines, strings.ToUpper(word))
	}

	return lines
}

// RenderFull returns every candidate for every row, uppercased and
// space-joined, one line per row
func RenderFull(answer [][]string) []string {
	lines := make([]string, 0, len(answer))

	for _, candidates := range answer {
		upper := make([]string, len(candidates))
		for i, word := range candidates {
			upper[i] = strings.ToUpper(word)
		}
		lines = append(lines, strings.Join(upper, " "))
	}

	return lines
}

// unused filters candidates down to words not yet chosen for an earlier row,
// preserving order
func (r *Renderer) unused(candidates []string) []string {
	var pool []string
	for _, word := range candidates {
		if !r.used[word] {
			pool = append(pool, word)
		}
	}
	return pool
}

// pickWeighted samples one word from the pool. The word at rank i (0-based)
// gets weight (n-i)^2, so words earlier in the dictionary are strongly
// favored, a rough stand-in for word commonality.
func (r *Renderer) pickWeighted(pool []string) (string, bool) {
	n := len(pool)
	if n == 0 {
		return "", false
	}

	total := 0
	for i := 0; i < n; i++ {
		w := n - i
		total += w * w
	}

	target := r.rng.Intn(total)
	for i := 0; i < n; i++ {
		w := n - i
		target -= w * w
		if target < 0 {
			return pool[i], true
		}
	}

	// Unreachable: the weights sum to total
	return pool[n-1], true
}
