package aggregator

import (
	"fmt"
	"sync"
	"time"

	"github.com/wordart/wordle-art/internal/pattern"
)

// RowResult represents the candidate list found for a single guess row
type RowResult struct {
	Row        int      `json:"row"`
	Candidates []string `json:"candidates"`
}

// Collector gathers per-row candidate lists from concurrent search workers
// and tracks search statistics. Rows may arrive in any order; the collected
// answer is always indexed by row.
type Collector struct {
	mu             sync.RWMutex
	answer         [pattern.GuessCount][]string
	rowsCollected  int
	wordsEvaluated int
	startTime      time.Time
	verbose        bool
}

// New creates a new Collector
func New(verbose bool) *Collector {
	return &Collector{
		startTime: time.Now(),
		verbose:   verbose,
	}
}

// AddRow records the candidate list for one row along with the number of
// dictionary words the search evaluated to produce it
func (c *Collector) AddRow(row int, candidates []string, evaluated int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.answer[row] = candidates
	c.rowsCollected++
	c.wordsEvaluated += evaluated

	if c.verbose {
		fmt.Printf("✅ Row %d: %d candidates\n", row+1, len(candidates))
	}
}

// Answer returns the collected per-row candidate lists in row order
func (c *Collector) Answer() [][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	answer := make([][]string, pattern.GuessCount)
	copy(answer, c.answer[:])
	return answer
}

// Rows returns the collected answer as row-tagged results for JSON output.
// Rows with no candidates carry an empty list rather than null.
func (c *Collector) Rows() []RowResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows := make([]RowResult, pattern.GuessCount)
	for i, candidates := range c.answer {
		if candidates == nil {
			candidates = []string{}
		}
		rows[i] = RowResult{Row: i + 1, Candidates: candidates}
	}
	return rows
}

// GetStats returns current search statistics
func (c *Collector) GetStats() (rows int, wordsEvaluated int, elapsed float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.rowsCollected, c.wordsEvaluated, time.Since(c.startTime).Seconds()
}

// PrintFinalStats prints final search statistics
func (c *Collector) PrintFinalStats() {
	rows, evaluated, elapsed := c.GetStats()

	fmt.Println("\n📊 Search Statistics:")
	fmt.Printf("  Rows searched: %d\n", rows)
	fmt.Printf("  Words evaluated: %d\n", evaluated)
	fmt.Printf("  Search time: %.3f seconds\n", elapsed)
}
